/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package board

import "github.com/google/uuid"

// NetSignal is a named electrical net. It is owned by the circuit; net
// segments hold a non-owning reference to exactly one signal.
type NetSignal struct {
	id   uuid.UUID
	name string
}

// ID returns the stable identity of the signal.
func (n *NetSignal) ID() uuid.UUID { return n.id }

// Name returns the net name, e.g. "GND".
func (n *NetSignal) Name() string { return n.name }

// Circuit is the circuit-level model owning the net signals referenced by
// board topology. Only the slice of the circuit model needed by the board
// editor core is represented here.
type Circuit struct {
	signals []*NetSignal
}

// NewCircuit creates an empty circuit.
func NewCircuit() *Circuit { return &Circuit{} }

// AddNetSignal registers a new named net and returns it.
func (c *Circuit) AddNetSignal(name string) *NetSignal {
	s := &NetSignal{id: uuid.New(), name: name}
	c.signals = append(c.signals, s)
	return s
}

// LoadNetSignal registers a net with an existing identity, used when
// restoring a persisted project.
func (c *Circuit) LoadNetSignal(id uuid.UUID, name string) *NetSignal {
	s := &NetSignal{id: id, name: name}
	c.signals = append(c.signals, s)
	return s
}

// NetSignals returns all signals in registration order.
func (c *Circuit) NetSignals() []*NetSignal { return c.signals }

// NetSignalByName returns the signal with the given name, or nil.
func (c *Circuit) NetSignalByName(name string) *NetSignal {
	for _, s := range c.signals {
		if s.name == name {
			return s
		}
	}
	return nil
}
