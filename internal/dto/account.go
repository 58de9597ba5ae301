package dto

import (
	"github.com/shambaledger/farm_ledger_app/internal/core/domain"
)

// AccountResponse defines the data returned for a chart account.
type AccountResponse struct {
	Name             string `json:"name"`
	Code             string `json:"code"`
	Category         string `json:"category"`
	SubCategory      string `json:"subCategory"`
	NormalSide       string `json:"normalSide"`
	CashFlowActivity string `json:"cashFlowActivity"`
	Description      string `json:"description"`
}

// ToAccountResponse converts a domain.Account to an AccountResponse DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		Name:             a.Name,
		Code:             a.Code,
		Category:         string(a.Category),
		SubCategory:      string(a.SubCategory),
		NormalSide:       string(a.NormalSide),
		CashFlowActivity: string(a.CashFlowActivity),
		Description:      a.Description,
	}
}

// ToAccountResponses converts a slice of domain.Account to DTOs.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}
