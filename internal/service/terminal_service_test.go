package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTerminalEmbedsPort(t *testing.T) {
	ports, terminals, _ := newTestServices(t)

	port, err := ports.Create(PortInput{Code: "AAAAA", Name: "Port Alpha"})
	require.NoError(t, err)

	created, err := terminals.Create(TerminalInput{
		Name:      "T1",
		PortID:    port.ID,
		Latitude:  1.0,
		Longitude: 2.0,
		IsActive:  true,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, port.ID, created.PortID)
	assert.True(t, created.IsActive)
	require.NotNil(t, created.Port, "create response must embed the resolved port")
	assert.Equal(t, "AAAAA", created.Port.Code)
	assert.False(t, created.AddedDate.IsZero())
}

func TestTerminalNameUniquePerPort(t *testing.T) {
	ports, terminals, _ := newTestServices(t)

	alpha, err := ports.Create(PortInput{Code: "AAAAA", Name: "Port Alpha"})
	require.NoError(t, err)
	bravo, err := ports.Create(PortInput{Code: "BBBBB", Name: "Port Bravo"})
	require.NoError(t, err)

	_, err = terminals.Create(TerminalInput{Name: "T1", PortID: alpha.ID})
	require.NoError(t, err)

	// Same name under the same port conflicts
	_, err = terminals.Create(TerminalInput{Name: "T1", PortID: alpha.ID})
	fault := requireFault(t, err, http.StatusBadRequest)
	assert.Equal(t, "Terminal name must be unique for the port.", fault.Message)

	// Same name under another port is fine
	_, err = terminals.Create(TerminalInput{Name: "T1", PortID: bravo.ID})
	require.NoError(t, err)
}

func TestGetTerminalNotFound(t *testing.T) {
	_, terminals, _ := newTestServices(t)

	_, err := terminals.Get(42)
	requireFault(t, err, http.StatusNotFound)
}

func TestUpdateTerminal(t *testing.T) {
	ports, terminals, _ := newTestServices(t)

	alpha, err := ports.Create(PortInput{Code: "AAAAA", Name: "Port Alpha"})
	require.NoError(t, err)
	bravo, err := ports.Create(PortInput{Code: "BBBBB", Name: "Port Bravo"})
	require.NoError(t, err)

	created, err := terminals.Create(TerminalInput{Name: "T1", PortID: alpha.ID, IsActive: true})
	require.NoError(t, err)

	err = terminals.Update(TerminalEdit{
		ID:        created.ID,
		Name:      "T1 North",
		PortID:    bravo.ID,
		Latitude:  3.5,
		Longitude: -4.5,
		IsActive:  false,
	})
	require.NoError(t, err)

	got, err := terminals.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "T1 North", got.Name)
	assert.Equal(t, bravo.ID, got.PortID)
	assert.Equal(t, 3.5, got.Latitude)
	assert.Equal(t, -4.5, got.Longitude)
	assert.False(t, got.IsActive)
	assert.NotNil(t, got.LastEditedDate)
	require.NotNil(t, got.Port)
	assert.Equal(t, "BBBBB", got.Port.Code)
}

func TestUpdateTerminalNotFound(t *testing.T) {
	_, terminals, _ := newTestServices(t)

	err := terminals.Update(TerminalEdit{ID: 42, Name: "T1", PortID: 1})
	requireFault(t, err, http.StatusNotFound)
}

func TestUpdateTerminalNameConflict(t *testing.T) {
	ports, terminals, _ := newTestServices(t)

	alpha, err := ports.Create(PortInput{Code: "AAAAA", Name: "Port Alpha"})
	require.NoError(t, err)

	_, err = terminals.Create(TerminalInput{Name: "T1", PortID: alpha.ID})
	require.NoError(t, err)
	second, err := terminals.Create(TerminalInput{Name: "T2", PortID: alpha.ID})
	require.NoError(t, err)

	err = terminals.Update(TerminalEdit{ID: second.ID, Name: "T1", PortID: alpha.ID})
	requireFault(t, err, http.StatusBadRequest)

	// Updating a terminal without renaming it must not conflict with itself
	err = terminals.Update(TerminalEdit{ID: second.ID, Name: "T2", PortID: alpha.ID, Latitude: 9})
	require.NoError(t, err)
}

func TestDeleteTerminal(t *testing.T) {
	ports, terminals, _ := newTestServices(t)

	alpha, err := ports.Create(PortInput{Code: "AAAAA", Name: "Port Alpha"})
	require.NoError(t, err)
	created, err := terminals.Create(TerminalInput{Name: "T1", PortID: alpha.ID})
	require.NoError(t, err)

	require.NoError(t, terminals.Delete(created.ID))

	_, err = terminals.Get(created.ID)
	requireFault(t, err, http.StatusNotFound)

	err = terminals.Delete(created.ID)
	requireFault(t, err, http.StatusNotFound)
}

func TestDeletePortCascadesToTerminals(t *testing.T) {
	ports, terminals, _ := newTestServices(t)

	port, err := ports.Create(PortInput{Code: "AAAAA", Name: "Port Alpha"})
	require.NoError(t, err)
	terminal, err := terminals.Create(TerminalInput{
		Name:      "T1",
		PortID:    port.ID,
		Latitude:  1.0,
		Longitude: 2.0,
		IsActive:  true,
	})
	require.NoError(t, err)
	require.NotNil(t, terminal.Port)

	require.NoError(t, ports.Delete(port.ID))

	_, err = terminals.Get(terminal.ID)
	requireFault(t, err, http.StatusNotFound)
}
