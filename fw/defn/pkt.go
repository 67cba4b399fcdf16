/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package defn

import "fmt"

// NodeID identifies a node in the network registry.
type NodeID int

// PktType is the type of a simulated packet.
type PktType int

const (
	// Interest requests the content named by Dst on behalf of Src.
	Interest PktType = iota
	// Data carries the content named by Src back to Dst.
	Data
)

func (t PktType) String() string {
	switch t {
	case Interest:
		return "Interest"
	case Data:
		return "Data"
	default:
		return "Unknown"
	}
}

// Pkt is a simulated packet. It must not be modified after creation.
type Pkt struct {
	Type PktType
	// Interest: requester name. Data: content name.
	Src string
	// Interest: requested content name. Data: requester name.
	Dst string
	// Remaining lifetime of the originating PIT entry (Interests only)
	Lifetime int
	// Content (Data only)
	Payload []byte
}

// NewInterest creates an Interest from requester for content.
func NewInterest(requester, content string, lifetime int) *Pkt {
	return &Pkt{
		Type:     Interest,
		Src:      requester,
		Dst:      content,
		Lifetime: lifetime,
	}
}

// NewData creates a Data packet carrying content back to requester.
func NewData(content, requester string, payload []byte) *Pkt {
	return &Pkt{
		Type:    Data,
		Src:     content,
		Dst:     requester,
		Payload: payload,
	}
}

// Size returns the payload length in bytes.
func (p *Pkt) Size() int {
	return len(p.Payload)
}

func (p *Pkt) String() string {
	return fmt.Sprintf("%s(%s->%s)", p.Type, p.Src, p.Dst)
}
