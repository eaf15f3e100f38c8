package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/bizhub-core/internal/application/dto"
	"github.com/jhoicas/bizhub-core/internal/domain"
	"github.com/jhoicas/bizhub-core/internal/domain/entity"
)

const inventoryColumns = `id, item_name, quantity, threshold, cost_price, sale_price, description, image_path, updated_at`

func scanInventoryItem(row interface{ Scan(...any) error }) (entity.InventoryItem, error) {
	var (
		it entity.InventoryItem
		ms int64
	)
	err := row.Scan(&it.ID, &it.Name, &it.Quantity, &it.Threshold, &it.CostPrice,
		&it.SalePrice, &it.Description, &it.ImagePath, &ms)
	if err != nil {
		return entity.InventoryItem{}, err
	}
	it.UpdatedAt = fromMillis(ms)
	return it, nil
}

// ListInventory devuelve todos los artículos ordenados por nombre.
func (s *Store) ListInventory() ([]entity.InventoryItem, error) {
	rows, err := s.db.Query(`SELECT ` + inventoryColumns + ` FROM inventory ORDER BY item_name`)
	if err != nil {
		return nil, s.persistErr("list inventory", err)
	}
	defer rows.Close()

	items := []entity.InventoryItem{}
	for rows.Next() {
		it, err := scanInventoryItem(rows)
		if err != nil {
			return nil, s.persistErr("scan inventory", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetInventoryItem devuelve un artículo por nombre.
func (s *Store) GetInventoryItem(name string) (entity.InventoryItem, error) {
	row := s.db.QueryRow(`SELECT `+inventoryColumns+` FROM inventory WHERE item_name = ?`, name)
	it, err := scanInventoryItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.InventoryItem{}, fmt.Errorf("%w: artículo %q", domain.ErrNotFound, name)
	}
	if err != nil {
		return entity.InventoryItem{}, s.persistErr("get inventory item", err)
	}
	return it, nil
}

// AddInventoryItem inserta un artículo nuevo. ErrDuplicate si el nombre existe.
func (s *Store) AddInventoryItem(item entity.InventoryItem) error {
	_, err := s.db.Exec(
		`INSERT INTO inventory (item_name, quantity, threshold, cost_price, sale_price, description, image_path, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		item.Name, item.Quantity, item.Threshold, item.CostPrice, item.SalePrice,
		item.Description, item.ImagePath, toMillis(time.Now()),
	)
	if err != nil {
		return s.persistErr("insert inventory item", err)
	}
	return nil
}

// UpdateInventoryItem escribe únicamente los campos presentes del parche.
func (s *Store) UpdateInventoryItem(name string, patch dto.InventoryPatch) error {
	sets := []string{}
	args := []any{}
	if patch.Quantity != nil {
		sets = append(sets, "quantity = ?")
		args = append(args, *patch.Quantity)
	}
	if patch.Threshold != nil {
		sets = append(sets, "threshold = ?")
		args = append(args, *patch.Threshold)
	}
	if patch.CostPrice != nil {
		sets = append(sets, "cost_price = ?")
		args = append(args, *patch.CostPrice)
	}
	if patch.SalePrice != nil {
		sets = append(sets, "sale_price = ?")
		args = append(args, *patch.SalePrice)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.ImagePath != nil {
		sets = append(sets, "image_path = ?")
		args = append(args, *patch.ImagePath)
	}
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, toMillis(time.Now()), name)

	query := "UPDATE inventory SET " + joinSets(sets) + " WHERE item_name = ?"
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return s.persistErr("update inventory item", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: artículo %q", domain.ErrNotFound, name)
	}
	return nil
}

// DeleteInventoryItem elimina un artículo por nombre.
func (s *Store) DeleteInventoryItem(name string) error {
	res, err := s.db.Exec(`DELETE FROM inventory WHERE item_name = ?`, name)
	if err != nil {
		return s.persistErr("delete inventory item", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: artículo %q", domain.ErrNotFound, name)
	}
	return nil
}

// DecrementInventory descuenta stock con un UPDATE condicionado: el chequeo
// de disponibilidad y el decremento ocurren en el mismo statement.
func (s *Store) DecrementInventory(name string, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: la cantidad a descontar debe ser positiva", domain.ErrValidation)
	}
	res, err := s.db.Exec(
		`UPDATE inventory SET quantity = quantity - ?, updated_at = ?
		 WHERE item_name = ? AND quantity >= ?`,
		qty, toMillis(time.Now()), name, qty,
	)
	if err != nil {
		return s.persistErr("decrement inventory", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if err := s.db.QueryRow(`SELECT COUNT(1) FROM inventory WHERE item_name = ?`, name).Scan(&exists); err != nil {
			return s.persistErr("check item", err)
		}
		if exists == 0 {
			return fmt.Errorf("%w: artículo %q", domain.ErrNotFound, name)
		}
		return fmt.Errorf("%w: stock insuficiente de %q", domain.ErrConflict, name)
	}
	return nil
}

// SearchInventory busca por nombre o descripción, sin distinguir mayúsculas.
func (s *Store) SearchInventory(query string) ([]entity.InventoryItem, error) {
	q := "%" + query + "%"
	rows, err := s.db.Query(
		`SELECT `+inventoryColumns+` FROM inventory
		 WHERE item_name LIKE ? OR description LIKE ? ORDER BY item_name`, q, q)
	if err != nil {
		return nil, s.persistErr("search inventory", err)
	}
	defer rows.Close()

	items := []entity.InventoryItem{}
	for rows.Next() {
		it, err := scanInventoryItem(rows)
		if err != nil {
			return nil, s.persistErr("scan inventory", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
