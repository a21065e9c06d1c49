package service

import (
	"time"

	"maritime-service/internal/model"
)

// PortView is the wire representation of a port, including its terminals.
type PortView struct {
	ID             uint           `json:"id"`
	Code           string         `json:"code"`
	Name           string         `json:"name"`
	AddedDate      time.Time      `json:"addedDate"`
	LastEditedDate *time.Time     `json:"lastEditedDate,omitempty"`
	Terminals      []TerminalView `json:"terminals"`
}

// TerminalView is the wire representation of a terminal with its parent
// port attached.
type TerminalView struct {
	ID             uint       `json:"id"`
	Name           string     `json:"name"`
	PortID         uint       `json:"portId"`
	Latitude       float64    `json:"latitude"`
	Longitude      float64    `json:"longitude"`
	IsActive       bool       `json:"isActive"`
	Port           *PortView  `json:"port,omitempty"`
	AddedDate      time.Time  `json:"addedDate"`
	LastEditedDate *time.Time `json:"lastEditedDate,omitempty"`
}

// The conversions below are deliberately hand-written and one level deep:
// a port view embeds its terminals without their back-reference, and a
// terminal view embeds its port without that port's terminals. This keeps
// the parent/child embedding a read-side join instead of a cyclic pair.

func toPortView(p *model.Port) PortView {
	terminals := make([]TerminalView, 0, len(p.Terminals))
	for i := range p.Terminals {
		terminals = append(terminals, toTerminalViewShallow(&p.Terminals[i]))
	}
	return PortView{
		ID:             p.ID,
		Code:           p.Code,
		Name:           p.Name,
		AddedDate:      p.AddedDate,
		LastEditedDate: p.LastEditedDate,
		Terminals:      terminals,
	}
}

func toTerminalView(t *model.Terminal) TerminalView {
	view := toTerminalViewShallow(t)
	if t.Port != nil {
		port := PortView{
			ID:             t.Port.ID,
			Code:           t.Port.Code,
			Name:           t.Port.Name,
			AddedDate:      t.Port.AddedDate,
			LastEditedDate: t.Port.LastEditedDate,
			Terminals:      []TerminalView{},
		}
		view.Port = &port
	}
	return view
}

func toTerminalViewShallow(t *model.Terminal) TerminalView {
	return TerminalView{
		ID:             t.ID,
		Name:           t.Name,
		PortID:         t.PortID,
		Latitude:       t.Latitude,
		Longitude:      t.Longitude,
		IsActive:       t.IsActive,
		AddedDate:      t.AddedDate,
		LastEditedDate: t.LastEditedDate,
	}
}
