package assets

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// RequiredImage описывает картинку, которую нужно вручную положить в статику.
// Размеры рекомендательные, сервер их не проверяет.
type RequiredImage struct {
	Dir    string // relative to the static root
	Name   string
	Width  int
	Height int
}

// Required is the manual checklist for the site: without these files the
// pages still render, browsers just get 404 on the image requests.
var Required = []RequiredImage{
	{Dir: "img", Name: "logo.png", Width: 200, Height: 56},
	{Dir: "img", Name: "header_banner.jpg", Width: 1440, Height: 600},
	{Dir: "img", Name: "restaurant_inside.jpg", Width: 800, Height: 600},
	{Dir: "img", Name: "chefs.jpg", Width: 800, Height: 600},
	{Dir: "img", Name: "about.jpg", Width: 600, Height: 400},
	{Dir: "img", Name: "footer_logo.png", Width: 120, Height: 34},
	{Dir: "img/menu_items", Name: "greek_salad.jpg", Width: 400, Height: 300},
	{Dir: "img/menu_items", Name: "bruschetta.jpg", Width: 400, Height: 300},
	{Dir: "img/menu_items", Name: "grilled_salmon.jpg", Width: 400, Height: 300},
	{Dir: "img/menu_items", Name: "lemon_dessert.jpg", Width: 400, Height: 300},
}

// Path returns the image path under the given static root.
func (ri RequiredImage) Path(staticRoot string) string {
	return filepath.Join(staticRoot, ri.Dir, ri.Name)
}

// CheckMissing возвращает список отсутствующих файлов из чеклиста.
func CheckMissing(staticRoot string) []RequiredImage {
	var missing []RequiredImage
	for _, ri := range Required {
		if _, err := os.Stat(ri.Path(staticRoot)); err != nil {
			missing = append(missing, ri)
		}
	}
	return missing
}

// WarnMissing logs every absent image and how to resolve it. Missing assets
// are never fatal: the site keeps working with broken image links.
func WarnMissing(staticRoot string) {
	missing := CheckMissing(staticRoot)
	if len(missing) == 0 {
		logrus.Infof("all %d required images present under %s", len(Required), staticRoot)
		return
	}
	for _, ri := range missing {
		logrus.Warnf("missing image %s (suggested %dx%d), place it under %s and restart the server",
			ri.Name, ri.Width, ri.Height, filepath.Join(staticRoot, ri.Dir))
	}
	logrus.Warnf("%d of %d required images missing, pages will show broken image links", len(missing), len(Required))
}
