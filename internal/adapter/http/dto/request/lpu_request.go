package request

import (
	"errors"
	"strings"
	"time"

	"lpu_quotation/internal/domain/entities"
	"lpu_quotation/internal/usecase"
)

var (
	ErrInvalidLimitDate = errors.New("limit_date must be YYYY-MM-DD")
)

const dateLayout = "2006-01-02"

type PermissionsRequest struct {
	AllowQuantityChange bool `json:"allow_quantity_change"`
	AllowAddItems       bool `json:"allow_add_items"`
	AllowRemoveItems    bool `json:"allow_remove_items"`
	AllowLPUEdit        bool `json:"allow_lpu_edit"`
}

func (p *PermissionsRequest) toEntity() *entities.PermissionSet {
	if p == nil {
		return nil
	}
	return &entities.PermissionSet{
		AllowQuantityChange: p.AllowQuantityChange,
		AllowAddItems:       p.AllowAddItems,
		AllowRemoveItems:    p.AllowRemoveItems,
		AllowLPUEdit:        p.AllowLPUEdit,
	}
}

type CreateLPURequest struct {
	WorkID             string              `json:"work_id" binding:"required"`
	LimitDate          string              `json:"limit_date" binding:"required"`
	DefaultPermissions *PermissionsRequest `json:"default_permissions"`
	SelectedItems      []string            `json:"selected_items"`
}

func (r CreateLPURequest) ToInput(createdBy string) (usecase.CreateLPUInput, error) {
	limit, err := parseDate(r.LimitDate)
	if err != nil {
		return usecase.CreateLPUInput{}, err
	}
	in := usecase.CreateLPUInput{
		WorkID:        strings.TrimSpace(r.WorkID),
		LimitDate:     limit,
		SelectedItems: r.SelectedItems,
		CreatedBy:     createdBy,
	}
	if p := r.DefaultPermissions.toEntity(); p != nil {
		in.DefaultPermissions = *p
	}
	return in, nil
}

// UpdateLPURequest is a partial update of a draft; absent fields are kept.
type UpdateLPURequest struct {
	WorkID             *string             `json:"work_id"`
	LimitDate          *string             `json:"limit_date"`
	DefaultPermissions *PermissionsRequest `json:"default_permissions"`
	Prices             map[string]float64  `json:"prices"`
	Quantities         map[string]int      `json:"quantities"`
	Version            *int                `json:"version"`
}

func (r UpdateLPURequest) ToInput() (usecase.UpdateLPUInput, error) {
	in := usecase.UpdateLPUInput{
		WorkID:             r.WorkID,
		DefaultPermissions: r.DefaultPermissions.toEntity(),
		Prices:             r.Prices,
		Quantities:         r.Quantities,
		Version:            r.Version,
	}
	if r.LimitDate != nil {
		limit, err := parseDate(*r.LimitDate)
		if err != nil {
			return usecase.UpdateLPUInput{}, err
		}
		in.LimitDate = &limit
	}
	return in, nil
}

// ItemValuesRequest edits one line of a draft. Values may be typed as numbers or as pt-BR strings.
type ItemValuesRequest struct {
	Price    *RawValue `json:"price"`
	Quantity *RawValue `json:"quantity"`
}

type SelectionRequest struct {
	Items []string `json:"items"`
}

type OpenRoundRequest struct {
	SupplierIDs   []string            `json:"supplier_ids"`
	Permissions   *PermissionsRequest `json:"permissions"`
	Definitive    bool                `json:"definitive"`
	SelectedItems []string            `json:"selected_items"`
}

func (r OpenRoundRequest) ToInput() usecase.OpenRoundInput {
	return usecase.OpenRoundInput{
		SupplierIDs:   r.SupplierIDs,
		Permissions:   r.Permissions.toEntity(),
		Definitive:    r.Definitive,
		SelectedItems: r.SelectedItems,
	}
}

type RevisionRequest struct {
	Comment     string              `json:"comment"`
	Permissions *PermissionsRequest `json:"permissions"`
}

func (r RevisionRequest) ResolvePermissions() *entities.PermissionSet {
	return r.Permissions.toEntity()
}

// ApproveRequest approves the current submission, or restores RevisionNumber from history when set.
type ApproveRequest struct {
	RevisionNumber *int `json:"revision_number"`
}

func parseDate(raw string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, ErrInvalidLimitDate
	}
	return t, nil
}
