package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/camden-git/hrmbackend/models"
	"github.com/camden-git/hrmbackend/resources"
)

func TestPersonsWorkbook(t *testing.T) {
	people := []resources.PersonResource{
		{
			ID:          1,
			StaffID:     "S-001",
			FirstName:   "Linh",
			LastName:    "Nguyen",
			Email:       "linh@example.com",
			Gender:      models.GenderFemale,
			YearOfBirth: time.Date(1994, 3, 2, 0, 0, 0, 0, time.UTC),
			CreatedAt:   time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
			Location:    &resources.LocationResource{ID: 2, Name: "Da Nang"},
			Projects: []resources.ProjectResource{
				{Name: "Payroll", Technology: []resources.TechnologyResource{{ID: 1, Name: "Go"}, {ID: 2, Name: "Rust"}}},
				{Name: "Intranet", Technology: []resources.TechnologyResource{{ID: 1, Name: "Go"}}},
			},
			CategoryPersons: []resources.CategoryPersonResource{
				{Technology: []resources.TechnologyResource{{ID: 3, Name: "Python"}}},
			},
		},
		{ID: 2, StaffID: "S-002", FirstName: "Kai", LastName: "Berg", Gender: models.GenderMale},
	}

	data, err := PersonsWorkbook(people)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{PersonSheetName}, f.GetSheetList())

	rows, err := f.GetRows(PersonSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, PersonExportHeader, rows[0])

	first := rows[1]
	assert.Equal(t, "S-001", first[1])
	assert.Equal(t, "Female", first[6])
	assert.Equal(t, "1994", first[7])
	assert.Equal(t, "Da Nang", first[8])
	assert.Equal(t, "", first[9])
	assert.Equal(t, "Payroll, Intranet", first[10])
	assert.Equal(t, "Go, Rust, Python", first[11])
	assert.Equal(t, "2024-05-01 09:30", first[12])

	assert.Equal(t, "Kai", rows[2][2])
	assert.Equal(t, "Male", rows[2][6])
}

func TestPersonsWorkbook_Empty(t *testing.T) {
	data, err := PersonsWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(PersonSheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
