package Models

// User is an admin account for the dashboard.
type User struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Name       string `json:"name" gorm:"size:255;not null;unique"`
	Password   []byte `json:"-"`
	Permission int    `json:"permission" gorm:"default:1"`
}
