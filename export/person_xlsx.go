package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/camden-git/hrmbackend/models"
	"github.com/camden-git/hrmbackend/resources"
)

const PersonSheetName = "Persons"

// PersonExportHeader lists the spreadsheet columns in order
var PersonExportHeader = []string{
	"Id",
	"Staff Id",
	"First Name",
	"Last Name",
	"Email",
	"Phone",
	"Gender",
	"Year Of Birth",
	"Location",
	"Group",
	"Projects",
	"Technologies",
	"Created At",
}

var personColumnWidths = []float64{8, 12, 20, 20, 30, 16, 10, 14, 20, 20, 40, 40, 20}

// PersonsWorkbook renders persons as a single-sheet xlsx workbook
func PersonsWorkbook(people []resources.PersonResource) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(PersonSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range PersonExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(PersonSheetName, cell, header); err != nil {
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(PersonSheetName, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}

		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(PersonSheetName, name, name, personColumnWidths[col]); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, p := range people {
		row := personRow(p)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetSheetRow(PersonSheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func personRow(p resources.PersonResource) []interface{} {
	location := ""
	if p.Location != nil {
		location = p.Location.Name
	}
	group := ""
	if p.Group != nil {
		group = p.Group.Name
	}

	projects := make([]string, 0, len(p.Projects))
	for _, pr := range p.Projects {
		projects = append(projects, pr.Name)
	}

	return []interface{}{
		p.ID,
		p.StaffID,
		p.FirstName,
		p.LastName,
		p.Email,
		p.Phone,
		genderLabel(p.Gender),
		p.YearOfBirth.Year(),
		location,
		group,
		strings.Join(projects, ", "),
		strings.Join(technologyNames(p), ", "),
		p.CreatedAt.Format("2006-01-02 15:04"),
	}
}

// technologyNames collects the distinct technologies across projects and skill entries
func technologyNames(p resources.PersonResource) []string {
	seen := make(map[uint]bool)
	var names []string
	add := func(techs []resources.TechnologyResource) {
		for _, t := range techs {
			if seen[t.ID] {
				continue
			}
			seen[t.ID] = true
			names = append(names, t.Name)
		}
	}
	for _, pr := range p.Projects {
		add(pr.Technology)
	}
	for _, cp := range p.CategoryPersons {
		add(cp.Technology)
	}
	return names
}

func genderLabel(g models.Gender) string {
	switch g {
	case models.GenderMale:
		return "Male"
	case models.GenderFemale:
		return "Female"
	default:
		return "Other"
	}
}
