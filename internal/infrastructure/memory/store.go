// Package memory implementa el contrato de almacenamiento sobre estructuras
// en memoria. Sirve como backend de tests (verifica que los servicios no
// dependen de comportamiento específico de SQLite) y como modo demo sin
// archivo.
package memory

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/bizhub-core/internal/application/dto"
	"github.com/jhoicas/bizhub-core/internal/domain"
	"github.com/jhoicas/bizhub-core/internal/domain/entity"
	"github.com/jhoicas/bizhub-core/internal/domain/storage"
)

var _ storage.Adapter = (*Store)(nil)

// Store almacenamiento en memoria. Seguro para uso secuencial; el mutex
// protege los mapas ante reuso accidental desde varias goroutines de test.
type Store struct {
	mu sync.Mutex

	users     map[string]entity.User // key: username
	inventory map[string]entity.InventoryItem
	sales     []entity.SaleRecord

	employees map[int64]entity.Employee
	reviews   []entity.EmployeeReview
	goals     []entity.EmployeeGoal
	payrolls  map[int64]entity.PayrollRecord

	appraisals map[int64]entity.AppraisalCycle
	fbRequests map[int64]entity.FeedbackRequest
	fbEntries  []entity.FeedbackEntry

	visitors map[int64]entity.Visitor
	leads    map[int64]entity.Lead

	emailCfg    *entity.EmailConfig
	companyInfo *entity.CompanyInfo

	activity []entity.ActivityLogEntry

	nextID int64
}

// New construye un almacenamiento en memoria vacío.
func New() *Store {
	return &Store{
		users:      make(map[string]entity.User),
		inventory:  make(map[string]entity.InventoryItem),
		employees:  make(map[int64]entity.Employee),
		payrolls:   make(map[int64]entity.PayrollRecord),
		appraisals: make(map[int64]entity.AppraisalCycle),
		fbRequests: make(map[int64]entity.FeedbackRequest),
		visitors:   make(map[int64]entity.Visitor),
		leads:      make(map[int64]entity.Lead),
	}
}

func (s *Store) nextSeq() int64 {
	s.nextID++
	return s.nextID
}

// Close no tiene recursos que liberar.
func (s *Store) Close() error { return nil }

// ── Usuarios ─────────────────────────────────────────────────────────────────

// EnsureAdminUser crea el admin si no existe. Idempotente.
func (s *Store) EnsureAdminUser(username, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[username]; ok {
		return nil
	}
	s.users[username] = entity.User{
		ID:           s.nextSeq(),
		Username:     username,
		PasswordHash: passwordHash,
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	return nil
}

func (s *Store) AuthenticateUser(username, passwordHash string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	return ok && u.PasswordHash == passwordHash, nil
}

func (s *Store) GetUserRole(username string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	if !ok {
		return entity.RoleUser, nil
	}
	return u.Role, nil
}

func (s *Store) UpdateLastLogin(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	if !ok {
		return fmt.Errorf("%w: usuario %q", domain.ErrNotFound, username)
	}
	now := time.Now()
	u.LastLogin = &now
	s.users[username] = u
	return nil
}

// ── Inventario ───────────────────────────────────────────────────────────────

func (s *Store) ListInventory() ([]entity.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]entity.InventoryItem, 0, len(s.inventory))
	for _, it := range s.inventory {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (s *Store) GetInventoryItem(name string) (entity.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.inventory[name]
	if !ok {
		return entity.InventoryItem{}, fmt.Errorf("%w: artículo %q", domain.ErrNotFound, name)
	}
	return it, nil
}

func (s *Store) AddInventoryItem(item entity.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inventory[item.Name]; ok {
		return fmt.Errorf("%w: artículo %q", domain.ErrDuplicate, item.Name)
	}
	item.ID = s.nextSeq()
	item.UpdatedAt = time.Now()
	s.inventory[item.Name] = item
	return nil
}

func (s *Store) UpdateInventoryItem(name string, patch dto.InventoryPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.inventory[name]
	if !ok {
		return fmt.Errorf("%w: artículo %q", domain.ErrNotFound, name)
	}
	if patch.Quantity != nil {
		it.Quantity = *patch.Quantity
	}
	if patch.Threshold != nil {
		it.Threshold = *patch.Threshold
	}
	if patch.CostPrice != nil {
		it.CostPrice = *patch.CostPrice
	}
	if patch.SalePrice != nil {
		it.SalePrice = *patch.SalePrice
	}
	if patch.Description != nil {
		it.Description = *patch.Description
	}
	if patch.ImagePath != nil {
		it.ImagePath = *patch.ImagePath
	}
	it.UpdatedAt = time.Now()
	s.inventory[name] = it
	return nil
}

func (s *Store) DeleteInventoryItem(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inventory[name]; !ok {
		return fmt.Errorf("%w: artículo %q", domain.ErrNotFound, name)
	}
	delete(s.inventory, name)
	return nil
}

func (s *Store) DecrementInventory(name string, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: la cantidad a descontar debe ser positiva", domain.ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.inventory[name]
	if !ok {
		return fmt.Errorf("%w: artículo %q", domain.ErrNotFound, name)
	}
	if it.Quantity < qty {
		return fmt.Errorf("%w: stock insuficiente de %q (%d < %d)",
			domain.ErrConflict, name, it.Quantity, qty)
	}
	it.Quantity -= qty
	it.UpdatedAt = time.Now()
	s.inventory[name] = it
	return nil
}

func (s *Store) SearchInventory(query string) ([]entity.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := strings.ToLower(query)
	var out []entity.InventoryItem
	for _, it := range s.inventory {
		if strings.Contains(strings.ToLower(it.Name), q) ||
			strings.Contains(strings.ToLower(it.Description), q) {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if out == nil {
		out = []entity.InventoryItem{}
	}
	return out, nil
}

// ── Ventas ───────────────────────────────────────────────────────────────────

func (s *Store) RecordSale(sale entity.SaleRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sale.ID = s.nextSeq()
	s.sales = append(s.sales, sale)
	return nil
}

// CheckoutSale decrementa stock y registra la venta como una unidad: si el
// stock no alcanza no se muta nada.
func (s *Store) CheckoutSale(sale entity.SaleRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.inventory[sale.ItemName]
	if !ok {
		return fmt.Errorf("%w: artículo %q", domain.ErrNotFound, sale.ItemName)
	}
	if it.Quantity < sale.Quantity {
		return fmt.Errorf("%w: stock insuficiente de %q (%d < %d)",
			domain.ErrConflict, sale.ItemName, it.Quantity, sale.Quantity)
	}
	it.Quantity -= sale.Quantity
	it.UpdatedAt = time.Now()
	s.inventory[sale.ItemName] = it
	sale.ID = s.nextSeq()
	s.sales = append(s.sales, sale)
	return nil
}

func (s *Store) ListSales() ([]entity.SaleRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.SaleRecord, len(s.sales))
	copy(out, s.sales)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SaleDate.After(out[j].SaleDate) })
	return out, nil
}

func (s *Store) SalesByDay(day string) ([]entity.SaleRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []entity.SaleRecord{}
	for _, sale := range s.sales {
		if sale.SaleDate.Format("2006-01-02") == day {
			out = append(out, sale)
		}
	}
	return out, nil
}

func (s *Store) SalesBetween(start, end string) ([]entity.SaleRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []entity.SaleRecord{}
	for _, sale := range s.sales {
		d := sale.SaleDate.Format("2006-01-02")
		if d >= start && d <= end {
			out = append(out, sale)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SaleDate.Before(out[j].SaleDate) })
	return out, nil
}

func (s *Store) SalesSummaryByItem(start, end string) ([]entity.SalesSummaryRow, error) {
	sales, err := s.SalesBetween(start, end)
	if err != nil {
		return nil, err
	}
	byItem := make(map[string]*entity.SalesSummaryRow)
	for _, sale := range sales {
		row, ok := byItem[sale.ItemName]
		if !ok {
			row = &entity.SalesSummaryRow{ItemName: sale.ItemName}
			byItem[sale.ItemName] = row
		}
		row.TotalQty += sale.Quantity
		row.TotalAmount = row.TotalAmount.Add(sale.TotalAmount)
	}
	out := make([]entity.SalesSummaryRow, 0, len(byItem))
	for _, row := range byItem {
		out = append(out, *row)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalQty > out[j].TotalQty })
	return out, nil
}

func (s *Store) SalesTrendByDay(start, end string) ([]entity.SalesTrendRow, error) {
	sales, err := s.SalesBetween(start, end)
	if err != nil {
		return nil, err
	}
	byDay := make(map[string]*entity.SalesTrendRow)
	for _, sale := range sales {
		day := sale.SaleDate.Format("2006-01-02")
		row, ok := byDay[day]
		if !ok {
			row = &entity.SalesTrendRow{Day: day}
			byDay[day] = row
		}
		row.TotalAmount = row.TotalAmount.Add(sale.TotalAmount)
	}
	out := make([]entity.SalesTrendRow, 0, len(byDay))
	for _, row := range byDay {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out, nil
}

// ── RR.HH. ───────────────────────────────────────────────────────────────────

func (s *Store) AddEmployee(emp entity.Employee) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.employees {
		if e.EmpNumber == emp.EmpNumber {
			return 0, fmt.Errorf("%w: empleado %q", domain.ErrDuplicate, emp.EmpNumber)
		}
	}
	emp.ID = s.nextSeq()
	now := time.Now()
	emp.CreatedAt = now
	emp.UpdatedAt = now
	s.employees[emp.ID] = emp
	return emp.ID, nil
}

func (s *Store) ListEmployees() ([]entity.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetEmployee(id int64) (entity.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.employees[id]
	if !ok {
		return entity.Employee{}, fmt.Errorf("%w: empleado %d", domain.ErrNotFound, id)
	}
	return e, nil
}

func (s *Store) UpdateEmployee(id int64, patch dto.EmployeePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.employees[id]
	if !ok {
		return fmt.Errorf("%w: empleado %d", domain.ErrNotFound, id)
	}
	if patch.Name != nil {
		e.Name = *patch.Name
	}
	if patch.JoiningDate != nil {
		e.JoiningDate = *patch.JoiningDate
	}
	if patch.Designation != nil {
		e.Designation = *patch.Designation
	}
	if patch.Manager != nil {
		e.Manager = *patch.Manager
	}
	if patch.Team != nil {
		e.Team = *patch.Team
	}
	if patch.Email != nil {
		e.Email = *patch.Email
	}
	if patch.Phone != nil {
		e.Phone = *patch.Phone
	}
	if patch.EmergencyContact != nil {
		e.EmergencyContact = *patch.EmergencyContact
	}
	if patch.PhotoPath != nil {
		e.PhotoPath = *patch.PhotoPath
	}
	if patch.Notes != nil {
		e.Notes = *patch.Notes
	}
	if patch.IsActive != nil {
		e.IsActive = *patch.IsActive
	}
	e.UpdatedAt = time.Now()
	s.employees[id] = e
	return nil
}

func (s *Store) DeleteEmployee(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.employees[id]; !ok {
		return fmt.Errorf("%w: empleado %d", domain.ErrNotFound, id)
	}
	delete(s.employees, id)
	return nil
}

func (s *Store) AddReview(review entity.EmployeeReview) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	review.ID = s.nextSeq()
	review.CreatedAt = time.Now()
	s.reviews = append(s.reviews, review)
	return nil
}

func (s *Store) ListReviewsByEmployee(employeeID int64) ([]entity.EmployeeReview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []entity.EmployeeReview{}
	for _, r := range s.reviews {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ReviewDate > out[j].ReviewDate })
	return out, nil
}

func (s *Store) AddGoal(goal entity.EmployeeGoal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	goal.ID = s.nextSeq()
	goal.CreatedAt = time.Now()
	s.goals = append(s.goals, goal)
	return nil
}

func (s *Store) ListGoalsByEmployee(employeeID int64) ([]entity.EmployeeGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []entity.EmployeeGoal{}
	for _, g := range s.goals {
		if g.EmployeeID == employeeID {
			out = append(out, g)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate < out[j].DueDate })
	return out, nil
}

// ── Nómina ───────────────────────────────────────────────────────────────────

func (s *Store) AddPayroll(rec entity.PayrollRecord) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.ID = s.nextSeq()
	now := time.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	s.payrolls[rec.ID] = rec
	return rec.ID, nil
}

func (s *Store) ListPayrolls() ([]entity.PayrollRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.PayrollRecord, 0, len(s.payrolls))
	for _, p := range s.payrolls {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) ListPayrollsByEmployee(employeeID int64) ([]entity.PayrollRecord, error) {
	all, _ := s.ListPayrolls()
	out := []entity.PayrollRecord{}
	for _, p := range all {
		if p.EmployeeID == employeeID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Store) GetPayroll(id int64) (entity.PayrollRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payrolls[id]
	if !ok {
		return entity.PayrollRecord{}, fmt.Errorf("%w: nómina %d", domain.ErrNotFound, id)
	}
	return p, nil
}

func (s *Store) UpdatePayroll(rec entity.PayrollRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.payrolls[rec.ID]
	if !ok {
		return fmt.Errorf("%w: nómina %d", domain.ErrNotFound, rec.ID)
	}
	rec.CreatedAt = prev.CreatedAt
	rec.UpdatedAt = time.Now()
	s.payrolls[rec.ID] = rec
	return nil
}

func (s *Store) DeletePayroll(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.payrolls[id]; !ok {
		return fmt.Errorf("%w: nómina %d", domain.ErrNotFound, id)
	}
	delete(s.payrolls, id)
	return nil
}

// ── Evaluaciones ─────────────────────────────────────────────────────────────

func (s *Store) CreateAppraisalCycle(cycle entity.AppraisalCycle) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cycle.ID = s.nextSeq()
	now := time.Now()
	cycle.CreatedAt = now
	cycle.UpdatedAt = now
	s.appraisals[cycle.ID] = cycle
	return cycle.ID, nil
}

func (s *Store) ListAppraisalCycles() ([]entity.AppraisalCycle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.AppraisalCycle, 0, len(s.appraisals))
	for _, c := range s.appraisals {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *Store) GetAppraisalCycle(id int64) (entity.AppraisalCycle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.appraisals[id]
	if !ok {
		return entity.AppraisalCycle{}, fmt.Errorf("%w: ciclo %d", domain.ErrNotFound, id)
	}
	return c, nil
}

func (s *Store) UpdateAppraisalCycle(id int64, patch dto.AppraisalPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.appraisals[id]
	if !ok {
		return fmt.Errorf("%w: ciclo %d", domain.ErrNotFound, id)
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	if patch.SelfText != nil {
		c.SelfText = *patch.SelfText
	}
	if patch.SelfRating != nil {
		c.SelfRating = *patch.SelfRating
	}
	if patch.ManagerText != nil {
		c.ManagerText = *patch.ManagerText
	}
	if patch.ManagerRating != nil {
		c.ManagerRating = *patch.ManagerRating
	}
	if patch.FinalRating != nil {
		c.FinalRating = *patch.FinalRating
	}
	c.UpdatedAt = time.Now()
	s.appraisals[id] = c
	return nil
}

func (s *Store) CreateFeedbackRequest(req entity.FeedbackRequest) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req.ID = s.nextSeq()
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now
	s.fbRequests[req.ID] = req
	return req.ID, nil
}

func (s *Store) ListFeedbackRequests() ([]entity.FeedbackRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.FeedbackRequest, 0, len(s.fbRequests))
	for _, r := range s.fbRequests {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *Store) UpdateFeedbackRequest(id int64, patch dto.FeedbackRequestPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.fbRequests[id]
	if !ok {
		return fmt.Errorf("%w: solicitud %d", domain.ErrNotFound, id)
	}
	if patch.Message != nil {
		r.Message = *patch.Message
	}
	if patch.Status != nil {
		r.Status = *patch.Status
	}
	r.UpdatedAt = time.Now()
	s.fbRequests[id] = r
	return nil
}

func (s *Store) AddFeedbackEntry(fb entity.FeedbackEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	fb.ID = s.nextSeq()
	fb.CreatedAt = time.Now()
	s.fbEntries = append(s.fbEntries, fb)
	return nil
}

func (s *Store) ListFeedbackEntries() ([]entity.FeedbackEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.FeedbackEntry, len(s.fbEntries))
	copy(out, s.fbEntries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// ── Visitas ──────────────────────────────────────────────────────────────────

func (s *Store) AddVisitor(v entity.Visitor) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = s.nextSeq()
	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now
	s.visitors[v.ID] = v
	return v.ID, nil
}

func (s *Store) ListVisitors() ([]entity.Visitor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Visitor, 0, len(s.visitors))
	for _, v := range s.visitors {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) UpdateVisitor(id int64, patch dto.VisitorPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.visitors[id]
	if !ok {
		return fmt.Errorf("%w: visitante %d", domain.ErrNotFound, id)
	}
	if patch.Name != nil {
		v.Name = *patch.Name
	}
	if patch.Address != nil {
		v.Address = *patch.Address
	}
	if patch.Phone != nil {
		v.Phone = *patch.Phone
	}
	if patch.Email != nil {
		v.Email = *patch.Email
	}
	if patch.Company != nil {
		v.Company = *patch.Company
	}
	if patch.Notes != nil {
		v.Notes = *patch.Notes
	}
	v.UpdatedAt = time.Now()
	s.visitors[id] = v
	return nil
}

func (s *Store) DeleteVisitor(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.visitors[id]; !ok {
		return fmt.Errorf("%w: visitante %d", domain.ErrNotFound, id)
	}
	delete(s.visitors, id)
	return nil
}

func (s *Store) SearchVisitors(query string) ([]entity.Visitor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := strings.ToLower(query)
	out := []entity.Visitor{}
	for _, v := range s.visitors {
		if strings.Contains(strings.ToLower(v.Name), q) ||
			strings.Contains(strings.ToLower(v.Email), q) ||
			strings.Contains(strings.ToLower(v.Phone), q) {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ── Configuración singleton ──────────────────────────────────────────────────

func (s *Store) SaveEmailConfig(cfg entity.EmailConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg.ID = s.nextSeq()
	s.emailCfg = &cfg
	return nil
}

func (s *Store) GetEmailConfig() (entity.EmailConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.emailCfg == nil {
		return entity.EmailConfig{}, fmt.Errorf("%w: configuración de correo", domain.ErrNotFound)
	}
	return *s.emailCfg, nil
}

func (s *Store) SaveCompanyInfo(info entity.CompanyInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	info.ID = s.nextSeq()
	s.companyInfo = &info
	return nil
}

func (s *Store) GetCompanyInfo() (entity.CompanyInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.companyInfo == nil {
		return entity.CompanyInfo{}, fmt.Errorf("%w: datos de empresa", domain.ErrNotFound)
	}
	return *s.companyInfo, nil
}

// ── Actividad ────────────────────────────────────────────────────────────────

func (s *Store) LogActivity(username, action, details string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activity = append(s.activity, entity.ActivityLogEntry{
		ID:        s.nextSeq(),
		Timestamp: time.Now(),
		Username:  username,
		Action:    action,
		Details:   details,
	})
	return nil
}

func (s *Store) ListActivity(username string) ([]entity.ActivityLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []entity.ActivityLogEntry{}
	for _, e := range s.activity {
		if username == "" || e.Username == username {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// ── Leads ────────────────────────────────────────────────────────────────────

func (s *Store) CreateLead(lead entity.Lead) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lead.ID = s.nextSeq()
	now := time.Now()
	lead.CreatedAt = now
	lead.UpdatedAt = now
	s.leads[lead.ID] = lead
	return lead.ID, nil
}

func (s *Store) GetLead(id int64) (entity.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.leads[id]
	if !ok {
		return entity.Lead{}, fmt.Errorf("%w: lead %d", domain.ErrNotFound, id)
	}
	return l, nil
}

func (s *Store) UpdateLead(id int64, patch dto.LeadPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.leads[id]
	if !ok {
		return fmt.Errorf("%w: lead %d", domain.ErrNotFound, id)
	}
	if patch.Name != nil {
		l.Name = *patch.Name
	}
	if patch.ContactName != nil {
		l.ContactName = *patch.ContactName
	}
	if patch.ContactEmail != nil {
		l.ContactEmail = *patch.ContactEmail
	}
	if patch.ContactPhone != nil {
		l.ContactPhone = *patch.ContactPhone
	}
	if patch.Company != nil {
		l.Company = *patch.Company
	}
	if patch.Stage != nil {
		l.Stage = *patch.Stage
	}
	if patch.Value != nil {
		l.Value = *patch.Value
	}
	if patch.Source != nil {
		l.Source = *patch.Source
	}
	if patch.AssignedTo != nil {
		l.AssignedTo = *patch.AssignedTo
	}
	if patch.Status != nil {
		l.Status = *patch.Status
	}
	if patch.Notes != nil {
		l.Notes = *patch.Notes
	}
	if patch.Tags != nil {
		l.Tags = *patch.Tags
	}
	if patch.Score != nil {
		l.Score = *patch.Score
	}
	l.UpdatedAt = time.Now()
	s.leads[id] = l
	return nil
}

func (s *Store) DeleteLead(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.leads[id]; !ok {
		return fmt.Errorf("%w: lead %d", domain.ErrNotFound, id)
	}
	delete(s.leads, id)
	return nil
}

func (s *Store) ListLeads(stage, status string) ([]entity.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []entity.Lead{}
	for _, l := range s.leads {
		if (stage == "" || l.Stage == stage) && (status == "" || l.Status == status) {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
