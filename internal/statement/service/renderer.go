package service

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	commissiondomain "github.com/teleforce-labs/teleforce/internal/commission/domain"
)

// renderPDF lays out one commission statement. Header, per-installation
// table, palier ledger, totals.
func renderPDF(result *commissiondomain.Result, sellerName, documentID string, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRows(
		text.NewRow(10, "Commission Statement", props.Text{Size: 16, Style: fontstyle.Bold}),
		text.NewRow(6, fmt.Sprintf("Seller: %s (%s)", sellerName, result.SellerCode), props.Text{Size: 10}),
		text.NewRow(6, "Month: "+result.Month, props.Text{Size: 10}),
		text.NewRow(6, fmt.Sprintf("Document %s, generated %s", documentID, generatedAt.Format("2006-01-02")), props.Text{Size: 8}),
		line.NewRow(4),
	)

	m.AddRows(text.NewRow(8, "Installations", props.Text{Size: 12, Style: fontstyle.Bold}))
	m.AddRow(6,
		text.NewCol(3, "Date", boldCell()),
		text.NewCol(4, "Customer", boldCell()),
		text.NewCol(3, "Product", boldCell()),
		text.NewCol(2, "Points", boldCellRight()),
	)
	for _, inst := range result.Installations {
		m.AddRow(5,
			text.NewCol(3, inst.InstalledAt.Format("2006-01-02"), cell()),
			text.NewCol(4, inst.CustomerName, cell()),
			text.NewCol(3, inst.Product, cell()),
			text.NewCol(2, fmt.Sprintf("%d", inst.Points), cellRight()),
		)
	}
	if len(result.Installations) == 0 {
		m.AddRows(text.NewRow(5, "No installations this month.", cell()))
	}

	m.AddRows(line.NewRow(4))
	m.AddRows(text.NewRow(8, "Commission ledger", props.Text{Size: 12, Style: fontstyle.Bold}))
	m.AddRow(6,
		text.NewCol(2, "Palier", boldCell()),
		text.NewCol(2, "Points", boldCellRight()),
		text.NewCol(2, "Tier", boldCellRight()),
		text.NewCol(3, "Product", boldCell()),
		text.NewCol(3, "Amount", boldCellRight()),
	)
	for _, entry := range result.Ledger {
		m.AddRow(5,
			text.NewCol(2, fmt.Sprintf("%d", entry.Palier), cell()),
			text.NewCol(2, fmt.Sprintf("%d", entry.PalierPoints), cellRight()),
			text.NewCol(2, fmt.Sprintf("%d", entry.Tier), cellRight()),
			text.NewCol(3, string(entry.Product), cell()),
			text.NewCol(3, formatEuros(entry.AmountCents), cellRight()),
		)
	}

	m.AddRows(
		line.NewRow(4),
		text.NewRow(8, fmt.Sprintf("Total points: %d (palier %d)", result.TotalPoints, result.FinalTier), props.Text{Size: 10}),
		text.NewRow(8, "Total commission: "+formatEuros(result.TotalCommissionCents), props.Text{Size: 12, Style: fontstyle.Bold}),
	)

	return generate(m)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

func formatEuros(cents int64) string {
	return fmt.Sprintf("%d.%02d EUR", cents/100, cents%100)
}

func cell() props.Text {
	return props.Text{Size: 9}
}

func cellRight() props.Text {
	return props.Text{Size: 9, Align: align.Right}
}

func boldCell() props.Text {
	return props.Text{Size: 9, Style: fontstyle.Bold}
}

func boldCellRight() props.Text {
	return props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
}
