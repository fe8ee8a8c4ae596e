package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPetProfile_SortScanHistory_MostRecentFirst(t *testing.T) {
	base := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	tenOClock := ScanLocation{ID: "scan-10", Timestamp: base}
	elevenOClock := ScanLocation{ID: "scan-11", Timestamp: base.Add(time.Hour)}

	// A concurrent append can land the newer entry behind the older one.
	pet := &PetProfile{ScanHistory: []ScanLocation{tenOClock, elevenOClock}}

	pet.SortScanHistory()

	require.Len(t, pet.ScanHistory, 2)
	assert.Equal(t, "scan-11", pet.ScanHistory[0].ID)
	assert.Equal(t, "scan-10", pet.ScanHistory[1].ID)
}

func TestPetProfile_SortScanHistory_GrowsByOnePerAppend(t *testing.T) {
	base := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	pet := &PetProfile{ScanHistory: []ScanLocation{
		{ID: "scan-10", Timestamp: base},
	}}

	before := len(pet.ScanHistory)
	pet.ScanHistory = append([]ScanLocation{{ID: "scan-11", Timestamp: base.Add(time.Hour)}}, pet.ScanHistory...)
	pet.SortScanHistory()

	require.Len(t, pet.ScanHistory, before+1)
	for i := 1; i < len(pet.ScanHistory); i++ {
		assert.False(t, pet.ScanHistory[i].Timestamp.After(pet.ScanHistory[i-1].Timestamp))
	}
}

func TestPetProfile_IsClaimed(t *testing.T) {
	owner := "uid-1"
	blank := ""

	assert.True(t, (&PetProfile{UserID: &owner}).IsClaimed())
	assert.False(t, (&PetProfile{}).IsClaimed())
	assert.False(t, (&PetProfile{UserID: &blank}).IsClaimed())
}
