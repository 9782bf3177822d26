package model

// 系統層級設定 key
const (
	SettingTaxRate = "tax_rate"
)

// Setting key/value 系統設定
type Setting struct {
	Key   string `gorm:"primaryKey;type:varchar(50)" json:"key"`
	Value string `gorm:"not null;type:text" json:"value"`
	BaseModel
}
