package sqlite

import (
	"fmt"

	"github.com/jhoicas/bizhub-core/internal/domain"
	"github.com/jhoicas/bizhub-core/internal/domain/entity"
)

const salesColumns = `id, receipt_id, sale_date, item_name, quantity, sale_price, total_amount, username`

// dayExpr convierte el timestamp en milisegundos a fecha UTC 2006-01-02 para
// filtrar y agrupar por día.
const dayExpr = `DATE(sale_date/1000, 'unixepoch')`

func (s *Store) scanSales(query string, args ...any) ([]entity.SaleRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, s.persistErr("query sales", err)
	}
	defer rows.Close()

	sales := []entity.SaleRecord{}
	for rows.Next() {
		var (
			sale entity.SaleRecord
			ms   int64
		)
		if err := rows.Scan(&sale.ID, &sale.ReceiptID, &ms, &sale.ItemName,
			&sale.Quantity, &sale.SalePrice, &sale.TotalAmount, &sale.Username); err != nil {
			return nil, s.persistErr("scan sale", err)
		}
		sale.SaleDate = fromMillis(ms)
		sales = append(sales, sale)
	}
	return sales, rows.Err()
}

// RecordSale anexa la venta sin tocar el stock.
func (s *Store) RecordSale(sale entity.SaleRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO sales (receipt_id, sale_date, item_name, quantity, sale_price, total_amount, username)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sale.ReceiptID, toMillis(sale.SaleDate), sale.ItemName, sale.Quantity,
		sale.SalePrice, sale.TotalAmount, sale.Username,
	)
	if err != nil {
		return s.persistErr("insert sale", err)
	}
	return nil
}

// CheckoutSale decrementa el stock y anexa la venta en una transacción; ante
// stock insuficiente o artículo inexistente no queda ningún cambio.
func (s *Store) CheckoutSale(sale entity.SaleRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return s.persistErr("begin checkout", err)
	}
	defer func() { _ = tx.Rollback() }()

	// El decremento condicionado evita la carrera lectura-escritura y deja el
	// chequeo de stock dentro del mismo statement.
	res, err := tx.Exec(
		`UPDATE inventory SET quantity = quantity - ?, updated_at = ?
		 WHERE item_name = ? AND quantity >= ?`,
		sale.Quantity, toMillis(sale.SaleDate), sale.ItemName, sale.Quantity,
	)
	if err != nil {
		return s.persistErr("decrement stock", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if err := tx.QueryRow(`SELECT COUNT(1) FROM inventory WHERE item_name = ?`, sale.ItemName).Scan(&exists); err != nil {
			return s.persistErr("check item", err)
		}
		if exists == 0 {
			return fmt.Errorf("%w: artículo %q", domain.ErrNotFound, sale.ItemName)
		}
		return fmt.Errorf("%w: stock insuficiente de %q", domain.ErrConflict, sale.ItemName)
	}

	if _, err := tx.Exec(
		`INSERT INTO sales (receipt_id, sale_date, item_name, quantity, sale_price, total_amount, username)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sale.ReceiptID, toMillis(sale.SaleDate), sale.ItemName, sale.Quantity,
		sale.SalePrice, sale.TotalAmount, sale.Username,
	); err != nil {
		return s.persistErr("insert sale", err)
	}

	if err := tx.Commit(); err != nil {
		return s.persistErr("commit checkout", err)
	}
	return nil
}

// ListSales devuelve el historial completo, más reciente primero.
func (s *Store) ListSales() ([]entity.SaleRecord, error) {
	return s.scanSales(`SELECT ` + salesColumns + ` FROM sales ORDER BY sale_date DESC`)
}

// SalesByDay ventas de un día concreto.
func (s *Store) SalesByDay(day string) ([]entity.SaleRecord, error) {
	return s.scanSales(`SELECT `+salesColumns+` FROM sales WHERE `+dayExpr+` = ?`, day)
}

// SalesBetween ventas del rango inclusivo, ascendente por fecha.
func (s *Store) SalesBetween(start, end string) ([]entity.SaleRecord, error) {
	return s.scanSales(
		`SELECT `+salesColumns+` FROM sales WHERE `+dayExpr+` BETWEEN ? AND ? ORDER BY sale_date ASC`,
		start, end)
}

// SalesSummaryByItem agregado por artículo, cantidad descendente.
func (s *Store) SalesSummaryByItem(start, end string) ([]entity.SalesSummaryRow, error) {
	rows, err := s.db.Query(
		`SELECT item_name, SUM(quantity), SUM(total_amount)
		 FROM sales WHERE `+dayExpr+` BETWEEN ? AND ?
		 GROUP BY item_name ORDER BY SUM(quantity) DESC`,
		start, end)
	if err != nil {
		return nil, s.persistErr("sales summary", err)
	}
	defer rows.Close()

	out := []entity.SalesSummaryRow{}
	for rows.Next() {
		var r entity.SalesSummaryRow
		if err := rows.Scan(&r.ItemName, &r.TotalQty, &r.TotalAmount); err != nil {
			return nil, s.persistErr("scan summary", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// SalesTrendByDay totales por día, ascendente.
func (s *Store) SalesTrendByDay(start, end string) ([]entity.SalesTrendRow, error) {
	rows, err := s.db.Query(
		`SELECT `+dayExpr+` AS sale_day, SUM(total_amount)
		 FROM sales WHERE `+dayExpr+` BETWEEN ? AND ?
		 GROUP BY sale_day ORDER BY sale_day ASC`,
		start, end)
	if err != nil {
		return nil, s.persistErr("sales trend", err)
	}
	defer rows.Close()

	out := []entity.SalesTrendRow{}
	for rows.Next() {
		var r entity.SalesTrendRow
		if err := rows.Scan(&r.Day, &r.TotalAmount); err != nil {
			return nil, s.persistErr("scan trend", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
