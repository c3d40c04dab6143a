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

import "log/slog"

// Group is an ordered composite of child commands executed and undone as a
// single atomic unit. If execution fails partway, all children that already
// succeeded are undone in strict reverse order and the original failure is
// propagated, leaving zero observable effect.
//
// A plain group is built with NewGroup plus Append and executed through the
// stack. Algorithm commands (net point placement, segment combination)
// embed a Group, initialize it with InitGroup passing themselves as the
// Performer, and build their children incrementally inside PerformExecute
// using ExecNewChild, so the model is consistent at every intermediate
// point and later children can observe earlier ones' effects.
type Group struct {
	Base
	children []Command
}

// NewGroup creates an empty command group with the given history label.
func NewGroup(desc string) *Group {
	g := &Group{}
	g.Base.Init(desc, g)
	return g
}

// InitGroup initializes an embedded Group for a derived algorithm command.
// The performer is the embedding struct, so its PerformExecute drives the
// group's first execution.
func (g *Group) InitGroup(desc string, p Performer) {
	g.Base.Init(desc, p)
}

// Children returns the child commands in execution order.
func (g *Group) Children() []Command { return g.children }

// ChildCount returns the number of child commands.
func (g *Group) ChildCount() int { return len(g.children) }

// Append adds a child command to be run by the group's execution. Valid
// only before the group has ever been executed.
func (g *Group) Append(cmd Command) error {
	if g.WasEverExecuted() {
		return Invariantf("append child to already executed group %q", g.Description())
	}
	g.children = append(g.children, cmd)
	return nil
}

// ExecNewChild executes cmd immediately and, on success, appends it to the
// group. This is the construction idiom of the topology algorithms: each
// child is executed as it is appended. On failure the child is discarded
// and the error returned; the caller's rollback guard restores the
// pre-execution state.
func (g *Group) ExecNewChild(cmd Command) error {
	if g.WasEverExecuted() {
		return Invariantf("exec new child on already executed group %q", g.Description())
	}
	if _, err := cmd.Execute(); err != nil {
		return err
	}
	g.children = append(g.children, cmd)
	return nil
}

// PerformExecute runs every appended child in order. On a child failure the
// already executed children are rolled back and the failure is returned.
// It reports a change iff at least one child changed something.
func (g *Group) PerformExecute() (bool, error) {
	done := false
	defer func() {
		if !done {
			g.Rollback()
		}
	}()

	changed := false
	for _, c := range g.children {
		ch, err := c.Execute()
		if err != nil {
			return false, err
		}
		changed = changed || ch
	}
	done = true
	return changed, nil
}

// PerformUndo reverts the children in exact reverse order.
func (g *Group) PerformUndo() error {
	for i := len(g.children) - 1; i >= 0; i-- {
		if err := g.children[i].Undo(); err != nil {
			return err
		}
	}
	return nil
}

// PerformRedo replays the children in original order.
func (g *Group) PerformRedo() error {
	for _, c := range g.children {
		if err := c.Redo(); err != nil {
			return err
		}
	}
	return nil
}

// Rollback undoes every currently executed child in reverse order. It is
// the compensating action of the scoped rollback guard: derived commands
// arrange for it to run on every exit path of PerformExecute except the one
// explicit success path, including stack-unwinding panics. A failure during
// rollback means the model can no longer be restored; it is logged and the
// model must be considered corrupt.
func (g *Group) Rollback() {
	for i := len(g.children) - 1; i >= 0; i-- {
		c := g.children[i]
		if c.State() != StateExecuted {
			continue
		}
		if err := c.Undo(); err != nil {
			slog.Error("rollback failed, model state may be corrupt",
				slog.String("group", g.Description()),
				slog.String("child", c.Description()),
				slog.Any("err", err))
			return
		}
	}
}
