package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/shambaledger/farm_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingHandlerTestSuite struct {
	HandlerTestSuite
}

func TestReportingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}

func (s *ReportingHandlerTestSuite) TestTrialBalance_Success() {
	s.reportingMock.On("TrialBalance", mock.Anything).Return(&domain.TrialBalanceReport{
		TotalDebit:  decimal.NewFromInt(4590),
		TotalCredit: decimal.NewFromInt(4590),
		IsBalanced:  true,
	}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/reports/trial-balance", nil)
	w := s.serve(req)

	s.Equal(http.StatusOK, w.Code)
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(true, resp["isBalanced"])
}

func (s *ReportingHandlerTestSuite) TestBalanceSheet_RatioRendersNA() {
	s.reportingMock.On("BalanceSheet", mock.Anything).Return(&domain.BalanceSheetReport{
		Ratios: domain.BalanceSheetRatios{
			DebtToEquity: domain.Ratio{},
		},
	}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/reports/balance-sheet", nil)
	w := s.serve(req)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"N/A"`)
}

func (s *ReportingHandlerTestSuite) TestProfitAndLoss_ServiceFailureIs500() {
	s.reportingMock.On("ProfitAndLoss", mock.Anything).
		Return(nil, errors.New("snapshot unavailable"))

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/reports/profit-and-loss", nil)
	w := s.serve(req)

	s.Equal(http.StatusInternalServerError, w.Code)
}

func (s *ReportingHandlerTestSuite) TestCashFlow_Success() {
	s.reportingMock.On("CashFlow", mock.Anything).Return(&domain.CashFlowReport{
		Operating:     domain.CashFlowSection{Activity: domain.ActivityOperating, Net: decimal.NewFromInt(1510)},
		Investing:     domain.CashFlowSection{Activity: domain.ActivityInvesting},
		Financing:     domain.CashFlowSection{Activity: domain.ActivityFinancing},
		NetCashChange: decimal.NewFromInt(1510),
	}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/reports/cash-flow", nil)
	w := s.serve(req)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"1510"`)
}

func (s *ReportingHandlerTestSuite) TestExport_CSVAttachment() {
	s.reportingMock.On("TrialBalance", mock.Anything).Return(&domain.TrialBalanceReport{
		IsBalanced: true,
	}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/export/trial-balance?format=csv", nil)
	w := s.serve(req)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Header().Get("Content-Disposition"), "trial-balance.csv")
	s.Contains(w.Body.String(), "category,code,account")
}

func (s *ReportingHandlerTestSuite) TestExport_UnimplementedFormatIs501() {
	s.reportingMock.On("CashFlow", mock.Anything).Return(&domain.CashFlowReport{}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/export/cash-flow?format=pdf", nil)
	w := s.serve(req)

	s.Equal(http.StatusNotImplemented, w.Code)
}

func (s *ReportingHandlerTestSuite) TestExport_UnknownReportIsBadRequest() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/export/general-journal", nil)
	w := s.serve(req)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ReportingHandlerTestSuite) TestExport_UnknownFormatIsBadRequest() {
	s.reportingMock.On("BalanceSheet", mock.Anything).Return(&domain.BalanceSheetReport{}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/export/balance-sheet?format=docx", nil)
	w := s.serve(req)

	s.Equal(http.StatusBadRequest, w.Code)
}
