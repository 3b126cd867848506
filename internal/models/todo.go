package models

// Todo represents the todos table. Every todo belongs to exactly one user.
type Todo struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"` // 1-5
	Complete    bool   `gorm:"not null" json:"complete"`
	OwnerID     uint   `gorm:"not null;index" json:"owner_id"`
	Owner       User   `gorm:"foreignKey:OwnerID" json:"-"`
}
