package entities

type Role struct {
	Id   uint
	Name string
}
