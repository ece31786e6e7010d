package model

type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"size:80;not null;uniqueIndex" json:"username"`
	Email    string `gorm:"size:120;not null;uniqueIndex" json:"email"`
}

func (User) TableName() string {
	return "users"
}
