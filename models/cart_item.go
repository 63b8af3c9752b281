package models

// CartItem 共有カートの1行
// ファイルストアでは行IDを持たず、ProductIDで行を識別する
type CartItem struct {
	ID        uint `gorm:"primaryKey" json:"id,omitempty"`
	ProductID uint `gorm:"not null;uniqueIndex" json:"product_id"`
	Quantity  int  `gorm:"not null;check:quantity > 0" json:"quantity"`
}
