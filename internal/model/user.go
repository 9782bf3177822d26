package model

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type User struct {
	UserID    uint   `gorm:"primaryKey" json:"user_id"`
	UserName  string `gorm:"not null;type:varchar(50)" json:"user_name"`
	UserEmail string `gorm:"unique;not null;type:varchar(100)" json:"user_email"`
	Role      string `gorm:"not null;type:varchar(20);default:'customer'" json:"role"`
	BaseModel
}

// AuthContext 目前請求的身份資訊
// 由 auth middleware 解出後顯式傳入 service，不依賴全域 session 狀態
type AuthContext struct {
	UserID uint
	Role   string
}

func (a AuthContext) IsAdmin() bool {
	return a.Role == RoleAdmin
}
