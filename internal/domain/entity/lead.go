package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Etapas del embudo de ventas de un lead.
const (
	LeadStageNew        = "New"
	LeadStageContacted  = "Contacted"
	LeadStageQualified  = "Qualified"
	LeadStageProposal   = "Proposal"
	LeadStageWon        = "Won"
	LeadStageLost       = "Lost"
)

// Lead representa un lead u oportunidad comercial del módulo CRM.
type Lead struct {
	ID           int64
	Name         string
	ContactName  string
	ContactEmail string
	ContactPhone string
	Company      string
	Stage        string // ver constantes LeadStage*
	Value        decimal.Decimal
	Source       string
	AssignedTo   string
	Status       string // active, archived
	Notes        string
	Tags         []string
	Score        float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
