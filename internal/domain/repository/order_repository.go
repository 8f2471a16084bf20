package repository

import "github.com/tu-usuario/comercio-pro/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order y sus líneas.
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	GetByID(id string) (*entity.Order, error)
	GetItemsByOrderID(orderID string) ([]*entity.OrderItem, error)
	List(limit, offset int) ([]*entity.Order, error)
	UpdateStatus(id, status string) error
}
