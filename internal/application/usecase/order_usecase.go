package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/comercio-pro/internal/application/dto"
	"github.com/tu-usuario/comercio-pro/internal/domain"
	"github.com/tu-usuario/comercio-pro/internal/domain/entity"
	"github.com/tu-usuario/comercio-pro/internal/domain/repository"
)

// OrderTxRunner ejecuta un callback con repos de órdenes y productos atados a
// una misma transacción. La cabecera y las líneas de una orden se persisten
// juntas o no se persisten.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// ReceiptGenerator genera el comprobante PDF de una orden.
type ReceiptGenerator interface {
	OrderReceipt(order *entity.Order, customerName string) ([]byte, error)
}

// OrderUseCase casos de uso de órdenes: creación transaccional, consulta,
// cambio de estado y comprobante.
type OrderUseCase struct {
	tx        OrderTxRunner
	orders    repository.OrderRepository
	companies repository.CompanyProfileRepository
	persons   repository.PersonProfileRepository
	receipts  ReceiptGenerator
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	tx OrderTxRunner,
	orders repository.OrderRepository,
	companies repository.CompanyProfileRepository,
	persons repository.PersonProfileRepository,
	receipts ReceiptGenerator,
) *OrderUseCase {
	return &OrderUseCase{
		tx:        tx,
		orders:    orders,
		companies: companies,
		persons:   persons,
		receipts:  receipts,
	}
}

// Create crea una orden con sus líneas en una sola transacción. El total se
// calcula en el servidor a partir de las líneas; el comprador se resuelve con
// un lookup explícito según su kind antes de abrir la transacción.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: la orden necesita al menos una línea", domain.ErrInvalidInput)
	}
	customerName, err := uc.resolveCustomer(in.Customer.Kind, in.Customer.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.Order{
		ID: uuid.New().String(),
		Customer: entity.CustomerRef{
			Kind: in.Customer.Kind,
			ID:   in.Customer.ID,
		},
		Status:    entity.OrderStatusPending,
		Total:     decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.tx.RunOrder(ctx, func(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) error {
		total := decimal.Zero
		items := make([]*entity.OrderItem, 0, len(in.Items))
		for _, line := range in.Items {
			if line.Quantity <= 0 {
				return fmt.Errorf("%w: cantidad inválida para producto %s", domain.ErrInvalidInput, line.ProductID)
			}
			product, err := productRepo.GetByID(line.ProductID)
			if err != nil {
				return err
			}
			if product == nil || !product.IsActive {
				return fmt.Errorf("%w: producto %s", domain.ErrNotFound, line.ProductID)
			}
			unitPrice := line.UnitPrice
			if unitPrice.IsZero() {
				unitPrice = product.Price
			}
			if unitPrice.IsNegative() {
				return fmt.Errorf("%w: precio unitario negativo", domain.ErrInvalidInput)
			}
			productID := product.ID
			item := &entity.OrderItem{
				ID:          uuid.New().String(),
				OrderID:     order.ID,
				ProductID:   &productID,
				ProductName: product.Name,
				Quantity:    line.Quantity,
				UnitPrice:   unitPrice,
			}
			items = append(items, item)
			total = total.Add(item.Subtotal())
		}
		order.Total = total
		order.Items = items

		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for _, item := range items {
			if err := orderRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toOrderResponse(order, customerName), nil
}

// GetByID obtiene una orden con sus líneas. Retorna nil si no existe.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	name, err := uc.resolveCustomer(order.Customer.Kind, order.Customer.ID)
	if err != nil {
		// La orden existe aunque el perfil ya no se pueda resolver.
		name = ""
	}
	return uc.toOrderResponse(order, name), nil
}

// List lista órdenes (sin líneas) con paginación.
func (uc *OrderUseCase) List(page dto.PageRequest) ([]dto.OrderResponse, error) {
	page.DefaultPage()
	list, err := uc.orders.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *uc.toOrderResponse(o, ""))
	}
	return items, nil
}

// Transiciones válidas de estado. Los estados terminales no tienen salida.
var orderTransitions = map[string][]string{
	entity.OrderStatusPending: {entity.OrderStatusPaid, entity.OrderStatusCancelled},
	entity.OrderStatusPaid:    {entity.OrderStatusShipped, entity.OrderStatusCancelled},
}

// UpdateStatus cambia el estado de una orden validando la transición.
func (uc *OrderUseCase) UpdateStatus(id, status string) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	allowed := false
	for _, next := range orderTransitions[order.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("%w: transición %s -> %s", domain.ErrInvalidInput, order.Status, status)
	}
	if err := uc.orders.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	return uc.toOrderResponse(order, ""), nil
}

// Receipt genera el comprobante PDF de una orden.
func (uc *OrderUseCase) Receipt(ctx context.Context, id string) ([]byte, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	name, err := uc.resolveCustomer(order.Customer.Kind, order.Customer.ID)
	if err != nil {
		name = ""
	}
	return uc.receipts.OrderReceipt(order, name)
}

// resolveCustomer verifica que el perfil comprador exista y retorna su nombre.
// La variante es cerrada: kind decide qué tabla se consulta.
func (uc *OrderUseCase) resolveCustomer(kind, id string) (string, error) {
	switch kind {
	case domain.KindCompany:
		profile, err := uc.companies.GetByID(id)
		if err != nil {
			return "", err
		}
		if profile == nil {
			return "", fmt.Errorf("%w: perfil de empresa %s", domain.ErrNotFound, id)
		}
		return profile.Name, nil
	case domain.KindPerson:
		profile, err := uc.persons.GetByID(id)
		if err != nil {
			return "", err
		}
		if profile == nil {
			return "", fmt.Errorf("%w: perfil de persona %s", domain.ErrNotFound, id)
		}
		return profile.Name, nil
	default:
		return "", domain.ErrInvalidKind
	}
}

func (uc *OrderUseCase) toOrderResponse(o *entity.Order, customerName string) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, i := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ID:          i.ID,
			ProductID:   i.ProductID,
			ProductName: i.ProductName,
			Quantity:    i.Quantity,
			UnitPrice:   i.UnitPrice,
			Subtotal:    i.Subtotal(),
		})
	}
	return &dto.OrderResponse{
		ID: o.ID,
		Customer: dto.OrderCustomerResponse{
			Kind: o.Customer.Kind,
			ID:   o.Customer.ID,
			Name: customerName,
		},
		Status:    o.Status,
		Total:     o.Total,
		Items:     items,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
