package entity

// CompanyInfo datos de la organización. Entidad singleton: a lo sumo un
// registro activo; guardar reemplaza el anterior.
type CompanyInfo struct {
	ID          int64
	CompanyName string
	Address     string
	Phone       string
	Email       string
	TaxID       string
	BankDetails string
}

// EmailConfig configuración SMTP para el envío de notificaciones. Entidad
// singleton igual que CompanyInfo.
type EmailConfig struct {
	ID             int64
	SMTPServer     string
	SMTPPort       int
	SenderEmail    string
	SenderPassword string
	RecipientEmail string
}
