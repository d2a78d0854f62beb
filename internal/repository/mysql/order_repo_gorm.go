package mysql

import (
	"log"
	"strings"

	"backoffice-service/internal/domain"
	"backoffice-service/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

// summaryColumns is the shared projection for order listings: the order row
// joined to its customer, with the customer's name parts collapsed into one
// display string. segundo_apellido is optional in the schema, hence COALESCE.
const summaryColumns = `
	p.ID_pedido AS id,
	p.fecha,
	p.total,
	p.estado,
	CONCAT(u.nombre, ' ', u.primer_apellido, ' ', COALESCE(u.segundo_apellido, '')) AS nombre_cliente,
	u.email,
	u.telefono`

// formattedAddress renders the direcciones row as the single display string
// the dashboard shows in the order list. Orders without a shipping address
// yield NULL here, not an error.
const formattedAddress = `
	CONCAT(d.calle, ' ', d.numero_exterior,
		CASE WHEN d.numero_interior != '' THEN CONCAT(' Int. ', d.numero_interior) ELSE '' END,
		', ', d.colonia, ', ', d.ciudad, ', ', d.estado, ' CP ', d.codigo_postal) AS direccion_completa`

func (r *orderRepo) FindAll() ([]domain.OrderSummary, error) {
	var out []domain.OrderSummary
	query := `
		SELECT` + summaryColumns + `,` + formattedAddress + `
		FROM pedidos p
		INNER JOIN usuarios u ON p.ID_usuario = u.ID_usuario
		LEFT JOIN direcciones d ON p.ID_direccion = d.ID_direccion
		ORDER BY p.fecha DESC`
	if err := r.db.Raw(query).Scan(&out).Error; err != nil {
		log.Printf("FindAll error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) FindByID(id uint64) (*domain.OrderDetail, error) {
	var detail domain.OrderDetail
	query := `
		SELECT` + summaryColumns + `,` + formattedAddress + `,
			d.calle,
			d.numero_exterior,
			d.numero_interior,
			d.colonia,
			d.ciudad,
			d.estado AS estado_direccion,
			d.codigo_postal,
			d.pais
		FROM pedidos p
		INNER JOIN usuarios u ON p.ID_usuario = u.ID_usuario
		LEFT JOIN direcciones d ON p.ID_direccion = d.ID_direccion
		WHERE p.ID_pedido = ?`
	res := r.db.Raw(query, id).Scan(&detail)
	if res.Error != nil {
		log.Printf("FindByID error: %v", res.Error)
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	// Second round trip for the line items. There is no wrapping transaction:
	// a concurrent write between the two reads can be observed, which is
	// tolerable for the admin dashboard this serves.
	items, err := r.findLineItems(id)
	if err != nil {
		return nil, err
	}
	detail.Items = items
	return &detail, nil
}

func (r *orderRepo) findLineItems(orderID uint64) ([]domain.OrderLineItem, error) {
	var items []domain.OrderLineItem
	query := `
		SELECT
			pr.ID_producto,
			pr.nombre,
			pr.descripcion,
			pr.imagen,
			m.nombre_marca,
			mt.nombre_material,
			c.nombre_categoria,
			g.nombre_genero,
			dp.cantidad,
			dp.precio_unitario,
			(dp.cantidad * dp.precio_unitario) AS subtotal
		FROM detalle_pedido dp
		INNER JOIN productos pr ON dp.ID_producto = pr.ID_producto
		LEFT JOIN marcas m ON pr.id_marca = m.ID_marca
		LEFT JOIN material mt ON pr.id_material = mt.ID_material
		LEFT JOIN categorias c ON pr.id_categoria = c.ID_categoria
		LEFT JOIN genero g ON pr.id_genero = g.ID_genero
		WHERE dp.ID_pedido = ?
		ORDER BY pr.nombre`
	if err := r.db.Raw(query, orderID).Scan(&items).Error; err != nil {
		log.Printf("findLineItems error: %v", err)
		return nil, err
	}

	// The imagen column stores a comma-separated URL list; the dashboard only
	// shows the first one.
	for i := range items {
		if items[i].Image != nil {
			first, _, _ := strings.Cut(*items[i].Image, ",")
			items[i].Image = &first
		}
	}
	if len(items) == 0 {
		return []domain.OrderLineItem{}, nil
	}
	return items, nil
}

func (r *orderRepo) FindByStatus(status domain.OrderStatus) ([]domain.OrderSummary, error) {
	var out []domain.OrderSummary
	query := `
		SELECT` + summaryColumns + `
		FROM pedidos p
		INNER JOIN usuarios u ON p.ID_usuario = u.ID_usuario
		WHERE p.estado = ?
		ORDER BY p.fecha DESC`
	if err := r.db.Raw(query, status).Scan(&out).Error; err != nil {
		log.Printf("FindByStatus error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) FindByCustomer(customerID uint64) ([]domain.OrderSummary, error) {
	var out []domain.OrderSummary
	query := `
		SELECT` + summaryColumns + `
		FROM pedidos p
		INNER JOIN usuarios u ON p.ID_usuario = u.ID_usuario
		WHERE p.ID_usuario = ?
		ORDER BY p.fecha DESC`
	if err := r.db.Raw(query, customerID).Scan(&out).Error; err != nil {
		log.Printf("FindByCustomer error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) Search(term string) ([]domain.OrderSummary, error) {
	var out []domain.OrderSummary
	// Substring containment over the customer's name parts, email and the
	// order id. Case-insensitivity comes from the schema's utf8mb4 ci
	// collation, same as the rest of the store.
	query := `
		SELECT` + summaryColumns + `
		FROM pedidos p
		INNER JOIN usuarios u ON p.ID_usuario = u.ID_usuario
		WHERE u.nombre LIKE ?
		   OR u.primer_apellido LIKE ?
		   OR u.segundo_apellido LIKE ?
		   OR u.email LIKE ?
		   OR p.ID_pedido LIKE ?
		ORDER BY p.fecha DESC`
	pattern := "%" + term + "%"
	if err := r.db.Raw(query, pattern, pattern, pattern, pattern, pattern).Scan(&out).Error; err != nil {
		log.Printf("Search error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) Create(order *domain.Order) error {
	result := r.db.Create(order)
	if result.Error != nil {
		log.Printf("Create error: %v", result.Error)
		return result.Error
	}
	return nil
}

func (r *orderRepo) UpdateStatus(id uint64, status domain.OrderStatus) (bool, error) {
	result := r.db.Model(&domain.Order{}).Where("ID_pedido = ?", id).Update("estado", status)
	if result.Error != nil {
		log.Printf("UpdateStatus error: %v", result.Error)
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *orderRepo) Update(id uint64, status *domain.OrderStatus, total *decimal.Decimal) (bool, error) {
	updates := map[string]any{}
	if status != nil {
		updates["estado"] = *status
	}
	if total != nil {
		updates["total"] = *total
	}
	if len(updates) == 0 {
		return false, nil
	}
	result := r.db.Model(&domain.Order{}).Where("ID_pedido = ?", id).Updates(updates)
	if result.Error != nil {
		log.Printf("Update error: %v", result.Error)
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *orderRepo) Delete(id uint64) (bool, error) {
	result := r.db.Delete(&domain.Order{}, "ID_pedido = ?", id)
	if result.Error != nil {
		log.Printf("Delete error: %v", result.Error)
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *orderRepo) CountAll() (int64, error) {
	var n int64
	if err := r.db.Model(&domain.Order{}).Count(&n).Error; err != nil {
		log.Printf("CountAll error: %v", err)
		return 0, err
	}
	return n, nil
}

func (r *orderRepo) CountByStatus(status domain.OrderStatus) (int64, error) {
	var n int64
	if err := r.db.Model(&domain.Order{}).Where("estado = ?", status).Count(&n).Error; err != nil {
		log.Printf("CountByStatus error: %v", err)
		return 0, err
	}
	return n, nil
}

func (r *orderRepo) RevenueToday() (decimal.Decimal, error) {
	return r.sumRevenue(`DATE(fecha) = CURDATE()`)
}

func (r *orderRepo) RevenueThisMonth() (decimal.Decimal, error) {
	return r.sumRevenue(`MONTH(fecha) = MONTH(CURDATE()) AND YEAR(fecha) = YEAR(CURDATE())`)
}

// sumRevenue totals non-cancelled orders inside the given calendar window.
// COALESCE keeps the empty case at zero instead of NULL.
func (r *orderRepo) sumRevenue(window string) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(total), 0) FROM pedidos WHERE ` + window + ` AND estado != ?`
	row := r.db.Raw(query, domain.StatusCancelled).Row()
	if err := row.Scan(&total); err != nil {
		log.Printf("sumRevenue error: %v", err)
		return decimal.Zero, err
	}
	return total, nil
}
