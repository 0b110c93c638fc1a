package investrak

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Field bounds shared by the validating constructors.
const (
	maxNameLen        = 100
	maxSymbolLen      = 10
	maxCategoryLen    = 50
	maxDescriptionLen = 500
	maxNotesLen       = 500
)

// now returns the current UTC time truncated to the second, so that records
// round-trip unchanged through their RFC 3339 persisted form.
var now = func() time.Time { return time.Now().UTC().Truncate(time.Second) }

// HoldingType is the kind of instrument a holding represents.
type HoldingType int

const (
	Stock HoldingType = iota
	ETF
	MutualFund
)

func (t HoldingType) String() string {
	switch t {
	case Stock:
		return "stock"
	case ETF:
		return "etf"
	case MutualFund:
		return "mutual_fund"
	default:
		return "unknown"
	}
}

// ParseHoldingType parses a string into a HoldingType.
func ParseHoldingType(s string) (HoldingType, error) {
	switch s {
	case "stock":
		return Stock, nil
	case "etf":
		return ETF, nil
	case "mutual_fund":
		return MutualFund, nil
	default:
		return 0, fmt.Errorf("unknown investment type: %q", s)
	}
}

func (t HoldingType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *HoldingType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseHoldingType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// GoalStatus is the progress state of a financial goal.
type GoalStatus int

const (
	InProgress GoalStatus = iota
	Completed
	OnHold
)

func (s GoalStatus) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Completed:
		return "completed"
	case OnHold:
		return "on_hold"
	default:
		return "unknown"
	}
}

// ParseGoalStatus parses a string into a GoalStatus.
func ParseGoalStatus(s string) (GoalStatus, error) {
	switch s {
	case "in_progress":
		return InProgress, nil
	case "completed":
		return Completed, nil
	case "on_hold":
		return OnHold, nil
	default:
		return 0, fmt.Errorf("unknown goal status: %q", s)
	}
}

func (s GoalStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *GoalStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseGoalStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Portfolio groups a set of holdings under a name. Its ID and creation date
// are set once at construction and never change.
type Portfolio struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	CreationDate time.Time `json:"creation_date"`
}

// NewPortfolio creates a validated portfolio with a fresh identity.
func NewPortfolio(name, description string) (Portfolio, error) {
	p := Portfolio{
		ID:           uuid.NewString(),
		Name:         name,
		Description:  description,
		CreationDate: now(),
	}
	if err := p.validate(); err != nil {
		return Portfolio{}, err
	}
	return p, nil
}

// Rename returns a complete replacement record with a new name and
// description, preserving identity and creation date.
func (p Portfolio) Rename(name, description string) (Portfolio, error) {
	p.Name = name
	p.Description = description
	if err := p.validate(); err != nil {
		return Portfolio{}, err
	}
	return p, nil
}

func (p Portfolio) validate() error {
	if err := requireText("name", p.Name, maxNameLen); err != nil {
		return err
	}
	return boundText("description", p.Description, maxDescriptionLen)
}

// Holding is a single investment position within a portfolio. Symbol, type,
// owning portfolio and purchase date are immutable after creation; quantity,
// price, category and notes change through HoldingUpdate.
type Holding struct {
	ID            string      `json:"id"`
	PortfolioID   string      `json:"portfolio_id"`
	Symbol        string      `json:"symbol"`
	Type          HoldingType `json:"type"`
	Quantity      int64       `json:"quantity"`
	PurchasePrice Money       `json:"purchase_price"`
	PurchaseDate  time.Time   `json:"purchase_date"`
	Category      string      `json:"category,omitempty"`
	Notes         string      `json:"notes,omitempty"`
}

// NewHolding creates a validated holding. The symbol is normalized to upper
// case and the purchase date defaults to the creation time when zero.
func NewHolding(portfolioID, symbol string, typ HoldingType, quantity int64, price Money, purchased time.Time, category, notes string) (Holding, error) {
	if purchased.IsZero() {
		purchased = now()
	}
	h := Holding{
		ID:            uuid.NewString(),
		PortfolioID:   portfolioID,
		Symbol:        strings.ToUpper(strings.TrimSpace(symbol)),
		Type:          typ,
		Quantity:      quantity,
		PurchasePrice: price,
		PurchaseDate:  purchased.UTC(),
		Category:      category,
		Notes:         notes,
	}
	if err := h.validate(); err != nil {
		return Holding{}, err
	}
	return h, nil
}

// CostBasis is the invested amount for this position.
func (h Holding) CostBasis() Money {
	return h.PurchasePrice.MulInt(h.Quantity)
}

func (h Holding) validate() error {
	if h.PortfolioID == "" {
		return fmt.Errorf("portfolio id is missing")
	}
	if err := requireText("symbol", h.Symbol, maxSymbolLen); err != nil {
		return err
	}
	if h.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", h.Quantity)
	}
	if !h.PurchasePrice.IsPositive() {
		return fmt.Errorf("purchase price must be positive, got %s", h.PurchasePrice.Amount())
	}
	if err := boundText("category", h.Category, maxCategoryLen); err != nil {
		return err
	}
	return boundText("notes", h.Notes, maxNotesLen)
}

// HoldingUpdate carries the mutable fields of a holding. Nil fields keep
// their current value. Apply merges the deltas into a complete replacement
// record, revalidated before it can reach storage.
type HoldingUpdate struct {
	Quantity      *int64
	PurchasePrice *Money
	Category      *string
	Notes         *string
}

func (u HoldingUpdate) Apply(h Holding) (Holding, error) {
	if u.Quantity != nil {
		h.Quantity = *u.Quantity
	}
	if u.PurchasePrice != nil {
		h.PurchasePrice = *u.PurchasePrice
	}
	if u.Category != nil {
		h.Category = *u.Category
	}
	if u.Notes != nil {
		h.Notes = *u.Notes
	}
	if err := h.validate(); err != nil {
		return Holding{}, err
	}
	return h, nil
}

// Goal is a financial target, optionally tied to a portfolio. The portfolio
// reference is weak: it is checked when the goal is saved, never afterwards.
type Goal struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	TargetAmount Money      `json:"target_amount"`
	TargetDate   time.Time  `json:"target_date"`
	Category     string     `json:"category,omitempty"`
	Description  string     `json:"description,omitempty"`
	Status       GoalStatus `json:"status"`
	CreationDate time.Time  `json:"creation_date"`
	PortfolioID  string     `json:"portfolio_id,omitempty"`
}

// NewGoal creates a validated goal. The target date must be strictly in the
// future at creation time.
func NewGoal(name string, target Money, targetDate time.Time, category, description string, status GoalStatus, portfolioID string) (Goal, error) {
	g := Goal{
		ID:           uuid.NewString(),
		Name:         name,
		TargetAmount: target,
		TargetDate:   targetDate.UTC(),
		Category:     category,
		Description:  description,
		Status:       status,
		CreationDate: now(),
		PortfolioID:  portfolioID,
	}
	if err := g.validate(); err != nil {
		return Goal{}, err
	}
	if err := requireFuture(g.TargetDate); err != nil {
		return Goal{}, err
	}
	return g, nil
}

func (g Goal) validate() error {
	if err := requireText("name", g.Name, maxNameLen); err != nil {
		return err
	}
	if !g.TargetAmount.IsPositive() {
		return fmt.Errorf("target amount must be positive, got %s", g.TargetAmount.Amount())
	}
	if err := boundText("category", g.Category, maxCategoryLen); err != nil {
		return err
	}
	return boundText("description", g.Description, maxDescriptionLen)
}

// GoalUpdate carries the mutable fields of a goal: everything except the
// identity and the creation date. A new target date must again be strictly
// in the future; an untouched past date on an old goal stays valid.
type GoalUpdate struct {
	Name         *string
	TargetAmount *Money
	TargetDate   *time.Time
	Category     *string
	Description  *string
	Status       *GoalStatus
	PortfolioID  *string
}

func (u GoalUpdate) Apply(g Goal) (Goal, error) {
	if u.Name != nil {
		g.Name = *u.Name
	}
	if u.TargetAmount != nil {
		g.TargetAmount = *u.TargetAmount
	}
	if u.TargetDate != nil {
		g.TargetDate = u.TargetDate.UTC()
		if err := requireFuture(g.TargetDate); err != nil {
			return Goal{}, err
		}
	}
	if u.Category != nil {
		g.Category = *u.Category
	}
	if u.Description != nil {
		g.Description = *u.Description
	}
	if u.Status != nil {
		g.Status = *u.Status
	}
	if u.PortfolioID != nil {
		g.PortfolioID = *u.PortfolioID
	}
	if err := g.validate(); err != nil {
		return Goal{}, err
	}
	return g, nil
}

// Snapshot is an immutable point-in-time record of a portfolio's aggregate
// value. Snapshots are append-only facts: never updated, never deleted.
type Snapshot struct {
	PortfolioID    string    `json:"portfolio_id"`
	TotalValue     Money     `json:"total_value"`
	InvestedAmount Money     `json:"invested_amount"`
	TakenAt        time.Time `json:"taken_at"`
}

func requireText(field, value string, max int) error {
	if value == "" {
		return fmt.Errorf("%s is required", field)
	}
	return boundText(field, value, max)
}

func boundText(field, value string, max int) error {
	if n := len([]rune(value)); n > max {
		return fmt.Errorf("%s is too long: %d characters, at most %d", field, n, max)
	}
	return nil
}

func requireFuture(t time.Time) error {
	if !t.After(now()) {
		return fmt.Errorf("target date %s must be in the future", t.Format(time.RFC3339))
	}
	return nil
}
