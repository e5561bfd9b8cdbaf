package request

import "lpu_quotation/internal/usecase"

type CreateSupplierRequest struct {
	SocialReason string `json:"social_reason" binding:"required"`
	TaxID        string `json:"tax_id" binding:"required"`
	Email        string `json:"email"`
}

// SupplierCredentialsRequest is embedded in every public supplier payload; each call re-authenticates.
type SupplierCredentialsRequest struct {
	Token string `json:"token"`
	TaxID string `json:"tax_id"`
}

func (r SupplierCredentialsRequest) Credentials() usecase.SupplierCredentials {
	return usecase.SupplierCredentials{Token: r.Token, TaxID: r.TaxID}
}

type SupplierLoginRequest struct {
	SupplierCredentialsRequest
}

type SupplierValueRequest struct {
	SupplierCredentialsRequest
	Value RawValue `json:"value"`
}

type SupplierSubmitRequest struct {
	SupplierCredentialsRequest
	SignerName string              `json:"signer_name"`
	Prices     map[string]RawValue `json:"prices"`
	Quantities map[string]RawValue `json:"quantities"`
}

func (r SupplierSubmitRequest) ToInput() usecase.SubmitInput {
	return usecase.SubmitInput{
		SignerName: r.SignerName,
		Prices:     rawMap(r.Prices),
		Quantities: rawMap(r.Quantities),
	}
}
