// Package service wires form loading, the billing engine and report
// output together for the CLI.
package service

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/cbslab/serverbilling/internal/billing"
	"github.com/cbslab/serverbilling/internal/forms"
)

type Service struct {
	pricing billing.Pricing
	log     *slog.Logger
}

func New(pricing billing.Pricing, log *slog.Logger) *Service {
	return &Service{pricing: pricing, log: log}
}

// BillPI renders one PI's quarterly report to w.
func (s *Service) BillPI(piForm, userForm, piLastName string, quarterEnd time.Time, w io.Writer) error {
	pis, users, err := s.loadForms(piForm, userForm)
	if err != nil {
		return err
	}

	bill, err := billing.AssembleBill(s.pricing, pis, users, piLastName, quarterEnd)
	if err != nil {
		return err
	}
	s.log.Info("bill assembled",
		"pi", piLastName,
		"quarter_end", quarterEnd.Format("2006-01-02"),
		"total", bill.Total())

	return bill.Render(w)
}

// BillAll writes one bill file per PI into outDir, plus a quarterly
// summary spreadsheet. Any failure aborts the whole run.
func (s *Service) BillAll(piForm, userForm string, quarterEnd time.Time, outDir string) error {
	pis, users, err := s.loadForms(piForm, userForm)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	quarter := quarterEnd.Format("2006-01-02")
	bills := make([]*billing.Bill, 0, len(pis))
	for _, pi := range pis {
		bill, err := billing.AssembleBill(s.pricing, pis, users, pi.LastName, quarterEnd)
		if err != nil {
			return err
		}

		path := filepath.Join(outDir, fmt.Sprintf("pi-%s_quarter-%s_bill.txt", pi.LastName, quarter))
		if err := writeBillFile(path, bill); err != nil {
			return err
		}
		s.log.Info("bill written", "pi", pi.LastName, "path", path, "total", bill.Total())
		bills = append(bills, bill)
	}

	summaryPath := filepath.Join(outDir, fmt.Sprintf("summary_%s.xlsx", quarter))
	if err := writeSummary(summaryPath, bills); err != nil {
		return err
	}
	s.log.Info("summary written", "path", summaryPath, "bills", len(bills))
	return nil
}

// loadForms loads both sheets and preprocesses them into the canonical
// tables the assembler expects.
func (s *Service) loadForms(piForm, userForm string) (billing.PITable, billing.UserTable, error) {
	pis, err := forms.LoadPIForm(piForm)
	if err != nil {
		return nil, nil, err
	}
	users, err := forms.LoadUserForm(userForm)
	if err != nil {
		return nil, nil, err
	}
	return billing.Preprocess(pis, users)
}

func writeBillFile(path string, bill *billing.Bill) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := bill.Render(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
