package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePortAndGet(t *testing.T) {
	ports, _, _ := newTestServices(t)

	created, err := ports.Create(PortInput{Code: "AAAAA", Name: "Port Alpha"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "AAAAA", created.Code)
	assert.Equal(t, "Port Alpha", created.Name)
	assert.False(t, created.AddedDate.IsZero())
	assert.Nil(t, created.LastEditedDate)
	assert.Empty(t, created.Terminals)

	got, err := ports.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Code, got.Code)
	assert.Equal(t, created.Name, got.Name)
	assert.NotNil(t, got.Terminals, "terminals must serialize as an array, not null")
}

func TestCreatePortValidation(t *testing.T) {
	ports, _, _ := newTestServices(t)

	cases := []struct {
		name string
		in   PortInput
	}{
		{"code too short", PortInput{Code: "ABCD", Name: "Valid Port Name"}},
		{"code too long", PortInput{Code: "ABCDEFGHIJK", Name: "Valid Port Name"}},
		{"name too short", PortInput{Code: "ABCDE", Name: "Ab"}},
		{"name too long", PortInput{Code: "ABCDE", Name: string(make([]byte, 101))}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ports.Create(tc.in)
			requireFault(t, err, http.StatusBadRequest)
		})
	}

	views, err := ports.List()
	require.NoError(t, err)
	assert.Empty(t, views, "rejected inputs must not be persisted")
}

func TestCreatePortDuplicateCode(t *testing.T) {
	ports, _, _ := newTestServices(t)

	_, err := ports.Create(PortInput{Code: "AAAAA", Name: "Port Alpha"})
	require.NoError(t, err)

	_, err = ports.Create(PortInput{Code: "AAAAA", Name: "Different Name"})
	fault := requireFault(t, err, http.StatusBadRequest)
	assert.Equal(t, "Port code must be unique.", fault.Message)
}

func TestGetPortNotFound(t *testing.T) {
	ports, _, _ := newTestServices(t)

	_, err := ports.Get(42)
	requireFault(t, err, http.StatusNotFound)
}

func TestUpdatePort(t *testing.T) {
	ports, _, _ := newTestServices(t)

	created, err := ports.Create(PortInput{Code: "AAAAA", Name: "Port Alpha"})
	require.NoError(t, err)

	err = ports.Update(PortEdit{ID: created.ID, Code: "BBBBB", Name: "Port Beta"})
	require.NoError(t, err)

	got, err := ports.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "BBBBB", got.Code)
	assert.Equal(t, "Port Beta", got.Name)
	assert.NotNil(t, got.LastEditedDate)
	assert.Equal(t, created.AddedDate.Unix(), got.AddedDate.Unix(), "addedDate must not change on update")
}

func TestUpdatePortNotFound(t *testing.T) {
	ports, _, _ := newTestServices(t)

	err := ports.Update(PortEdit{ID: 42, Code: "BBBBB", Name: "Port Beta"})
	requireFault(t, err, http.StatusNotFound)

	views, err := ports.List()
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestUpdatePortCodeConflict(t *testing.T) {
	ports, _, _ := newTestServices(t)

	_, err := ports.Create(PortInput{Code: "AAAAA", Name: "Port Alpha"})
	require.NoError(t, err)
	second, err := ports.Create(PortInput{Code: "BBBBB", Name: "Port Bravo"})
	require.NoError(t, err)

	// Taking another port's code is a conflict
	err = ports.Update(PortEdit{ID: second.ID, Code: "AAAAA", Name: "Port Bravo"})
	fault := requireFault(t, err, http.StatusBadRequest)
	assert.Equal(t, "Port code must be unique.", fault.Message)

	// Keeping its own code is not
	err = ports.Update(PortEdit{ID: second.ID, Code: "BBBBB", Name: "Port Bravo Two"})
	require.NoError(t, err)
}

func TestDeletePort(t *testing.T) {
	ports, _, _ := newTestServices(t)

	created, err := ports.Create(PortInput{Code: "AAAAA", Name: "Port Alpha"})
	require.NoError(t, err)

	require.NoError(t, ports.Delete(created.ID))

	_, err = ports.Get(created.ID)
	requireFault(t, err, http.StatusNotFound)

	err = ports.Delete(created.ID)
	requireFault(t, err, http.StatusNotFound)
}

func TestListPortsIncludesTerminals(t *testing.T) {
	ports, terminals, _ := newTestServices(t)

	port, err := ports.Create(PortInput{Code: "AAAAA", Name: "Port Alpha"})
	require.NoError(t, err)
	_, err = terminals.Create(TerminalInput{Name: "T1", PortID: port.ID, Latitude: 1.0, Longitude: 2.0, IsActive: true})
	require.NoError(t, err)

	views, err := ports.List()
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Len(t, views[0].Terminals, 1)
	assert.Equal(t, "T1", views[0].Terminals[0].Name)
	assert.Nil(t, views[0].Terminals[0].Port, "embedded terminals must not embed the port back")
}
