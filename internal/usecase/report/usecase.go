package report

import (
	"context"
	"fmt"
	"io"

	"koperasi-backend/internal/domain/member"
	"koperasi-backend/internal/domain/saving"
)

// Row is one aggregated savings line for a member-role member.
type Row struct {
	Index          int    `json:"no"`
	Name           string `json:"name"`
	PrincipalTotal int64  `json:"principal_total"`
	MandatoryTotal int64  `json:"mandatory_total"`
	VoluntaryTotal int64  `json:"voluntary_total"`
	GrandTotal     int64  `json:"grand_total"`
}

type Usecase struct {
	members member.Repository
	savings saving.Repository
}

func NewUsecase(members member.Repository, savings saving.Repository) *Usecase {
	return &Usecase{members: members, savings: savings}
}

// BuildSavingsReport aggregates savings per member-role member. Row order
// follows the registry's member ordering, not amounts. A member with no
// savings still gets a row of zeroes.
func (u *Usecase) BuildSavingsReport(ctx context.Context) ([]Row, error) {
	ms, err := u.members.ListByRole(ctx, member.RoleMember)
	if err != nil {
		return nil, err
	}
	ss, err := u.savings.List(ctx)
	if err != nil {
		return nil, err
	}
	return BuildRows(ms, ss), nil
}

// BuildRows is the pure aggregation over already-loaded collections.
func BuildRows(members []member.Member, savings []saving.SavingRecord) []Row {
	byMember := make(map[string][]saving.SavingRecord, len(members))
	for _, s := range savings {
		byMember[s.MemberName] = append(byMember[s.MemberName], s)
	}

	rows := make([]Row, 0, len(members))
	for i, m := range members {
		row := Row{Index: i + 1, Name: m.Name}
		for _, s := range byMember[m.Name] {
			switch s.Category {
			case saving.CategoryPrincipal:
				row.PrincipalTotal += s.Amount
			case saving.CategoryMandatory:
				row.MandatoryTotal += s.Amount
			case saving.CategoryVoluntary:
				row.VoluntaryTotal += s.Amount
			}
		}
		row.GrandTotal = row.PrincipalTotal + row.MandatoryTotal + row.VoluntaryTotal
		rows = append(rows, row)
	}
	return rows
}

// The two header lines are a compatibility contract with an existing
// spreadsheet layout and must be reproduced byte for byte: the second line
// carries the Wajib/Sukarela sub-headers under the merged "Simpanan" column.
const (
	csvHeaderLine1 = "No,Nama Anggota,Simpanan Pokok,Simpanan, ,Total\n"
	csvHeaderLine2 = " , , ,Wajib,Sukarela, \n"
)

// WriteCSV serializes rows in the fixed export shape: two header lines, then
// one bare comma-separated line per row, no quoting.
func WriteCSV(w io.Writer, rows []Row) error {
	if _, err := io.WriteString(w, csvHeaderLine1); err != nil {
		return err
	}
	if _, err := io.WriteString(w, csvHeaderLine2); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%d,%s,%d,%d,%d,%d\n",
			r.Index, r.Name, r.PrincipalTotal, r.MandatoryTotal, r.VoluntaryTotal, r.GrandTotal); err != nil {
			return err
		}
	}
	return nil
}
