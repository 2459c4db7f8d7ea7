package dataprep_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/retentionlab/knapsack/dataprep"
)

func writeCSV(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "employees.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	return path
}

const header = "Age,MonthlyIncome,YearsAtCompany,DistanceFromHome,JobSatisfaction,WorkLifeBalance,PerformanceRating,JobRole,Attrition\n"

func TestLoadEmployeeRecords_HappyPath(t *testing.T) {
	path := writeCSV(t, header+
		"30,5000,4,10,3,2,4,Engineer,0\n"+
		"45,7000,12,2,1,3,3,Manager,1\n")

	records, err := dataprep.LoadEmployeeRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.NotNil(t, records[0].Age)
	require.Equal(t, 30.0, *records[0].Age)
	require.Equal(t, "Engineer", records[0].JobRole)
	require.False(t, records[0].Attrition)
	require.True(t, records[1].Attrition)
}

func TestLoadEmployeeRecords_BlankCellBecomesMissing(t *testing.T) {
	path := writeCSV(t, header+
		",5000,4,10,3,2,4,Engineer,0\n")

	records, err := dataprep.LoadEmployeeRecords(path)
	require.NoError(t, err)
	require.Nil(t, records[0].Age)
}

func TestLoadEmployeeRecords_MissingColumnErrors(t *testing.T) {
	path := writeCSV(t, "Age,MonthlyIncome\n30,5000\n")

	_, err := dataprep.LoadEmployeeRecords(path)
	require.ErrorIs(t, err, dataprep.ErrMissingColumn)
}

func TestLoadEmployeeRecords_NoRowsErrors(t *testing.T) {
	path := writeCSV(t, header)

	_, err := dataprep.LoadEmployeeRecords(path)
	require.ErrorIs(t, err, dataprep.ErrNoRecords)
}
