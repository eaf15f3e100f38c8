package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/bizhub-core/internal/domain"
	"github.com/jhoicas/bizhub-core/internal/domain/entity"
)

// saveSingleton reemplaza el único registro de una tabla singleton dentro de
// una transacción: el borrado y la inserción se confirman juntos o ninguno.
func (s *Store) saveSingleton(table, insert string, args ...any) error {
	tx, err := s.db.Begin()
	if err != nil {
		return s.persistErr("begin save "+table, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM " + table); err != nil {
		return s.persistErr("clear "+table, err)
	}
	if _, err := tx.Exec(insert, args...); err != nil {
		return s.persistErr("insert "+table, err)
	}
	if err := tx.Commit(); err != nil {
		return s.persistErr("commit save "+table, err)
	}
	return nil
}

// SaveEmailConfig reemplaza la configuración SMTP vigente.
func (s *Store) SaveEmailConfig(cfg entity.EmailConfig) error {
	return s.saveSingleton("email_config",
		`INSERT INTO email_config (smtp_server, smtp_port, sender_email, sender_password, recipient_email)
		 VALUES (?, ?, ?, ?, ?)`,
		cfg.SMTPServer, cfg.SMTPPort, cfg.SenderEmail, cfg.SenderPassword, cfg.RecipientEmail)
}

// GetEmailConfig devuelve la configuración SMTP vigente o ErrNotFound.
func (s *Store) GetEmailConfig() (entity.EmailConfig, error) {
	var cfg entity.EmailConfig
	err := s.db.QueryRow(
		`SELECT id, smtp_server, smtp_port, sender_email, sender_password, recipient_email
		 FROM email_config ORDER BY id DESC LIMIT 1`).
		Scan(&cfg.ID, &cfg.SMTPServer, &cfg.SMTPPort, &cfg.SenderEmail,
			&cfg.SenderPassword, &cfg.RecipientEmail)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.EmailConfig{}, fmt.Errorf("%w: configuración de correo", domain.ErrNotFound)
	}
	if err != nil {
		return entity.EmailConfig{}, s.persistErr("get email config", err)
	}
	return cfg, nil
}

// SaveCompanyInfo reemplaza los datos de la organización.
func (s *Store) SaveCompanyInfo(info entity.CompanyInfo) error {
	return s.saveSingleton("company_info",
		`INSERT INTO company_info (company_name, address, phone, email, tax_id, bank_details)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		info.CompanyName, info.Address, info.Phone, info.Email, info.TaxID, info.BankDetails)
}

// GetCompanyInfo devuelve los datos de la organización o ErrNotFound.
func (s *Store) GetCompanyInfo() (entity.CompanyInfo, error) {
	var info entity.CompanyInfo
	err := s.db.QueryRow(
		`SELECT id, company_name, address, phone, email, tax_id, bank_details
		 FROM company_info ORDER BY id DESC LIMIT 1`).
		Scan(&info.ID, &info.CompanyName, &info.Address, &info.Phone,
			&info.Email, &info.TaxID, &info.BankDetails)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.CompanyInfo{}, fmt.Errorf("%w: datos de la empresa", domain.ErrNotFound)
	}
	if err != nil {
		return entity.CompanyInfo{}, s.persistErr("get company info", err)
	}
	return info, nil
}
