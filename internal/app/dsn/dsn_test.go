package dsn

import "testing"

func TestPostgresString(t *testing.T) {
	p := Postgres{
		Host:     "localhost",
		Port:     "5432",
		User:     "lemonuser",
		Password: "lemonpass",
		DBName:   "littlelemon",
		SSLMode:  "disable",
	}

	got := p.String()
	want := "host=localhost port=5432 user=lemonuser password=lemonpass dbname=littlelemon sslmode=disable"
	if got != want {
		t.Errorf("Expected '%s', got '%s'", want, got)
	}
}
