/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package undo

import (
	"errors"
	"fmt"
	"testing"
)

// addCmd is a minimal reversible command for tests: it adds delta to a
// shared counter and journals its phases.
type addCmd struct {
	Base
	name     string
	counter  *int
	delta    int
	journal  *[]string
	failExec bool
	failUndo bool
	noChange bool
}

func newAddCmd(name string, counter *int, delta int, journal *[]string) *addCmd {
	c := &addCmd{name: name, counter: counter, delta: delta, journal: journal}
	c.Init("add "+name, c)
	return c
}

func (c *addCmd) record(phase string) {
	if c.journal != nil {
		*c.journal = append(*c.journal, c.name+":"+phase)
	}
}

func (c *addCmd) PerformExecute() (bool, error) {
	if c.failExec {
		return false, fmt.Errorf("%s refuses to execute", c.name)
	}
	if c.noChange {
		return false, nil
	}
	*c.counter += c.delta
	c.record("exec")
	return true, nil
}

func (c *addCmd) PerformUndo() error {
	if c.failUndo {
		return fmt.Errorf("%s refuses to undo", c.name)
	}
	*c.counter -= c.delta
	c.record("undo")
	return nil
}

func (c *addCmd) PerformRedo() error {
	*c.counter += c.delta
	c.record("redo")
	return nil
}

func TestCommandLifecycle(t *testing.T) {
	n := 0
	c := newAddCmd("a", &n, 5, nil)
	if c.State() != StateCreated {
		t.Fatalf("new command state = %s, want created", c.State())
	}
	if c.WasEverExecuted() {
		t.Fatalf("new command reports ever-executed")
	}

	changed, err := c.Execute()
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !changed {
		t.Fatalf("Execute reported no change")
	}
	if n != 5 {
		t.Fatalf("counter = %d, want 5", n)
	}
	if c.State() != StateExecuted || !c.WasEverExecuted() {
		t.Fatalf("after execute: state=%s ever=%v", c.State(), c.WasEverExecuted())
	}

	if err := c.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if n != 0 {
		t.Fatalf("counter after undo = %d, want 0", n)
	}
	if c.State() != StateUndone {
		t.Fatalf("after undo: state=%s", c.State())
	}

	if err := c.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if n != 5 {
		t.Fatalf("counter after redo = %d, want 5", n)
	}
	if c.State() != StateExecuted {
		t.Fatalf("after redo: state=%s", c.State())
	}
}

func TestCommandExecuteTwiceIsInvariantViolation(t *testing.T) {
	n := 0
	c := newAddCmd("a", &n, 1, nil)
	if _, err := c.Execute(); err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if _, err := c.Execute(); !IsInvariant(err) {
		t.Fatalf("second Execute error = %v, want invariant violation", err)
	}
	// A command undone and re-executed must also be rejected; that path
	// goes through Redo.
	if err := c.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if _, err := c.Execute(); !IsInvariant(err) {
		t.Fatalf("Execute after undo error = %v, want invariant violation", err)
	}
}

func TestCommandWrongStateTransitions(t *testing.T) {
	n := 0
	c := newAddCmd("a", &n, 1, nil)
	if err := c.Undo(); !IsInvariant(err) {
		t.Fatalf("Undo before execute = %v, want invariant violation", err)
	}
	if err := c.Redo(); !IsInvariant(err) {
		t.Fatalf("Redo before execute = %v, want invariant violation", err)
	}
	if _, err := c.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if err := c.Redo(); !IsInvariant(err) {
		t.Fatalf("Redo in executed state = %v, want invariant violation", err)
	}
}

func TestCommandFailedExecuteLeavesCreatedState(t *testing.T) {
	n := 0
	c := newAddCmd("a", &n, 1, nil)
	c.failExec = true
	if _, err := c.Execute(); err == nil {
		t.Fatalf("Execute succeeded, want failure")
	}
	if c.State() != StateCreated || c.WasEverExecuted() {
		t.Fatalf("after failed execute: state=%s ever=%v", c.State(), c.WasEverExecuted())
	}
	if n != 0 {
		t.Fatalf("counter mutated by failed execute: %d", n)
	}
}

func TestCommandUndoFailureIsInvariantViolation(t *testing.T) {
	n := 0
	c := newAddCmd("a", &n, 1, nil)
	if _, err := c.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	c.failUndo = true
	err := c.Undo()
	if !IsInvariant(err) {
		t.Fatalf("Undo failure = %v, want invariant violation", err)
	}
	var ie *InvariantError
	if !errors.As(err, &ie) {
		t.Fatalf("error does not unwrap to InvariantError: %v", err)
	}
}
