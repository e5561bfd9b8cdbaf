package entities

import (
	"strings"
	"time"
)

// RoundConfig describes a quoting round being opened.
type RoundConfig struct {
	Suppliers []InvitedSupplier
	// Permissions falls back to the LPU DefaultPermissions when nil.
	Permissions *PermissionSet
	// Definitive restricts the round to Selection; otherwise every item is visible.
	Definitive bool
	Selection  []string
}

// CanTransition reports whether from -> to is an edge of the lifecycle.
func CanTransition(from, to LPUStatus) bool {
	switch from {
	case LPUStatusDraft:
		return to == LPUStatusWaiting
	case LPUStatusWaiting:
		return to == LPUStatusDraft || to == LPUStatusSubmitted
	case LPUStatusSubmitted:
		return to == LPUStatusWaiting || to == LPUStatusApproved
	}
	return false
}

func (l *LPU) checkTransition(to LPUStatus) error {
	if l.Status == LPUStatusApproved {
		return ErrLPUApproved
	}
	if !CanTransition(l.Status, to) {
		return ErrInvalidTransition
	}
	return nil
}

// EnsureEditable rejects internal edits outside draft.
func (l *LPU) EnsureEditable() error {
	switch l.Status {
	case LPUStatusDraft:
		return nil
	case LPUStatusApproved:
		return ErrLPUApproved
	}
	return ErrNotDraft
}

// EnsureDeletable allows deletion except for approved LPUs and LPUs with a live supplier link.
func (l *LPU) EnsureDeletable() error {
	switch l.Status {
	case LPUStatusApproved:
		return ErrLPUApproved
	case LPUStatusWaiting:
		return ErrDeleteNotAllowed
	}
	return nil
}

// OpenRound moves draft -> waiting. The existing token is kept when present so links already
// shared with suppliers keep working. Nothing is changed when an error is returned.
func (l *LPU) OpenRound(cfg RoundConfig, now time.Time, newToken func() (string, error)) error {
	if err := l.checkTransition(LPUStatusWaiting); err != nil {
		return err
	}
	suppliers := dedupeSuppliers(cfg.Suppliers)
	if len(suppliers) == 0 {
		return NewValidationError("suppliers", ErrNoInvitedSuppliers)
	}
	if DateOnly(l.LimitDate).Before(DateOnly(now)) {
		return NewValidationError("limit_date", ErrLimitDateInPast)
	}

	var selection []string
	if cfg.Definitive {
		selection = NormalizeSelection(cfg.Selection)
		if len(selection) == 0 {
			return NewValidationError("selected_items", ErrEmptySelection)
		}
	}

	token := l.QuoteToken
	if token == "" {
		t, err := newToken()
		if err != nil {
			return err
		}
		token = t
	}

	perms := l.DefaultPermissions
	if cfg.Permissions != nil {
		perms = *cfg.Permissions
	}

	l.QuoteToken = token
	l.QuotePermissions = &perms
	l.InvitedSuppliers = suppliers
	l.SelectedItems = selection
	l.SubmissionMetadata = nil
	l.Status = LPUStatusWaiting
	return nil
}

// CancelRound moves waiting -> draft, revoking the supplier link. Pricing data and selection are kept.
func (l *LPU) CancelRound() error {
	if err := l.checkTransition(LPUStatusDraft); err != nil {
		return err
	}
	l.QuoteToken = ""
	l.QuotePermissions = nil
	l.Status = LPUStatusDraft
	return nil
}

// Submit moves waiting -> submitted and stamps the submission metadata.
func (l *LPU) Submit(meta SubmissionMetadata) error {
	if l.Status == LPUStatusSubmitted || l.Status == LPUStatusApproved {
		return ErrAlreadySubmitted
	}
	if err := l.checkTransition(LPUStatusSubmitted); err != nil {
		return err
	}
	meta.SignerName = strings.TrimSpace(meta.SignerName)
	if meta.SignerName == "" {
		return NewValidationError("signer_name", ErrEmptySignerName)
	}
	l.SubmissionMetadata = &meta
	l.Status = LPUStatusSubmitted
	return nil
}

// RequestRevision moves submitted -> waiting, freezing the current submission into History.
// Token and permissions are retained unless perms is given.
func (l *LPU) RequestRevision(comment string, perms *PermissionSet, now time.Time) (Revision, error) {
	if err := l.checkTransition(LPUStatusWaiting); err != nil {
		return Revision{}, err
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return Revision{}, NewValidationError("comment", ErrEmptyRevisionComment)
	}

	rev := Revision{
		RevisionNumber:     len(l.History) + 1,
		CreatedAt:          now.UTC(),
		Comment:            comment,
		Prices:             clonePrices(l.Prices),
		Quantities:         cloneQuantities(l.Quantities),
		SubmissionMetadata: cloneMetadata(l.SubmissionMetadata),
	}
	l.History = append(l.History, rev)
	l.SubmissionMetadata = nil
	l.RevisionComment = comment
	if perms != nil {
		p := *perms
		l.QuotePermissions = &p
	}
	l.Status = LPUStatusWaiting
	return rev, nil
}

// Approve moves submitted -> approved.
func (l *LPU) Approve() error {
	if err := l.checkTransition(LPUStatusApproved); err != nil {
		return err
	}
	l.Status = LPUStatusApproved
	return nil
}

// ApproveRevision overwrites the live pricing data with revision n and approves.
// The overwritten state is not pushed to history.
func (l *LPU) ApproveRevision(n int) error {
	if l.Status == LPUStatusApproved {
		return ErrLPUApproved
	}
	rev, ok := l.Revision(n)
	if !ok {
		return ErrRevisionNotFound
	}
	l.Prices = clonePrices(rev.Prices)
	l.Quantities = cloneQuantities(rev.Quantities)
	l.SubmissionMetadata = cloneMetadata(rev.SubmissionMetadata)
	l.Status = LPUStatusApproved
	return nil
}

func dedupeSuppliers(in []InvitedSupplier) []InvitedSupplier {
	seen := make(map[string]struct{}, len(in))
	out := make([]InvitedSupplier, 0, len(in))
	for _, s := range in {
		id := strings.TrimSpace(s.SupplierID)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		s.SupplierID = id
		out = append(out, s)
	}
	return out
}
