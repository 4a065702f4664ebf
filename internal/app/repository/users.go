package repository

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type PublicUser struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	IsStaff        bool   `json:"isStaff"`
	IsManager      bool   `json:"isManager"`
	IsDeliveryCrew bool   `json:"isDeliveryCrew"`
}

func (r *Repository) toPublic(u user) PublicUser {
	pu := PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsStaff:   u.IsStaff,
	}
	pu.IsManager, _ = r.userInGroup(u.ID, GroupManager)
	pu.IsDeliveryCrew, _ = r.userInGroup(u.ID, GroupDeliveryCrew)
	return pu
}

func (r *Repository) userInGroup(userID int64, groupName string) (bool, error) {
	var cnt int64
	err := r.db.Table("user_groups ug").
		Joins("JOIN groups g ON g.id = ug.group_id").
		Where("ug.user_id = ? AND g.name = ?", userID, groupName).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *Repository) Register(username, password, email string) (PublicUser, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return PublicUser{}, errors.New("invalid input")
	}
	var exists int64
	if err := r.db.Model(&user{}).Where("username = ?", username).Count(&exists).Error; err != nil {
		return PublicUser{}, err
	}
	if exists > 0 {
		return PublicUser{}, errors.New("username taken")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return PublicUser{}, err
	}
	u := user{Username: username, Password: string(hash), Email: strings.TrimSpace(email), IsStaff: false}
	if err := r.db.Create(&u).Error; err != nil {
		return PublicUser{}, err
	}
	return r.toPublic(u), nil
}

func (r *Repository) Authenticate(username, password string) (PublicUser, error) {
	var u user
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return PublicUser{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return PublicUser{}, errors.New("bad credentials")
	}
	return r.toPublic(u), nil
}

func (r *Repository) GetUserByID(id int64) (PublicUser, error) {
	var u user
	if err := r.db.Where("id = ?", id).First(&u).Error; err != nil {
		return PublicUser{}, err
	}
	return r.toPublic(u), nil
}

func (r *Repository) UpdateProfile(id int64, email, firstName, lastName, password *string) error {
	updates := map[string]interface{}{}
	if email != nil {
		updates["email"] = strings.TrimSpace(*email)
	}
	if firstName != nil {
		updates["first_name"] = strings.TrimSpace(*firstName)
	}
	if lastName != nil {
		updates["last_name"] = strings.TrimSpace(*lastName)
	}
	if password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		updates["password_hash"] = string(hash)
	}
	if len(updates) == 0 {
		return nil
	}
	res := r.db.Model(&user{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListGroupUsers returns members of the named group ordered by id.
func (r *Repository) ListGroupUsers(groupName string) ([]PublicUser, error) {
	var rows []user
	if err := r.db.Table("users u").
		Select("u.*").
		Joins("JOIN user_groups ug ON ug.user_id = u.id").
		Joins("JOIN groups g ON g.id = ug.group_id").
		Where("g.name = ?", groupName).
		Order("u.id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]PublicUser, 0, len(rows))
	for _, u := range rows {
		result = append(result, r.toPublic(u))
	}
	return result, nil
}

// AddUserToGroup добавляет пользователя в группу по имени пользователя
func (r *Repository) AddUserToGroup(username, groupName string) error {
	var u user
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return err
	}
	g, err := r.getOrCreateGroup(groupName)
	if err != nil {
		return err
	}
	in, err := r.userInGroup(u.ID, groupName)
	if err != nil {
		return err
	}
	if in {
		return nil
	}
	return r.db.Create(&userGroup{UserID: u.ID, GroupID: g.ID}).Error
}

// RemoveUserFromGroup убирает пользователя из группы
func (r *Repository) RemoveUserFromGroup(userID int64, groupName string) (string, error) {
	var u user
	if err := r.db.Where("id = ?", userID).First(&u).Error; err != nil {
		return "", err
	}
	g, err := r.getOrCreateGroup(groupName)
	if err != nil {
		return "", err
	}
	if err := r.db.Where("user_id = ? AND group_id = ?", u.ID, g.ID).Delete(&userGroup{}).Error; err != nil {
		return "", err
	}
	return u.Username, nil
}

func (r *Repository) getOrCreateGroup(name string) (group, error) {
	var g group
	err := r.db.Where("name = ?", name).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		g = group{Name: name}
		if err := r.db.Create(&g).Error; err != nil {
			return group{}, err
		}
		return g, nil
	}
	if err != nil {
		return group{}, err
	}
	return g, nil
}
