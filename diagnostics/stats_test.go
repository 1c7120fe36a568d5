/*
Copyright (C) 2024-2026  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package diagnostics

import (
	"strings"
	"testing"
)

func TestNilCountersAreNoOps(t *testing.T) {
	var c *Counters
	c.FormEvaluated()
	c.Enter()
	c.Leave()
	if got := c.Report(); got != "" {
		t.Fatalf("Report() on nil Counters = %q; want empty", got)
	}
}

func TestFormEvaluatedAccumulates(t *testing.T) {
	c := &Counters{}
	c.FormEvaluated()
	c.FormEvaluated()
	c.FormEvaluated()
	report := c.Report()
	if !strings.Contains(report, "forms evaluated : 3") {
		t.Fatalf("Report() = %q; want it to mention 3 forms evaluated", report)
	}
}

func TestPeakDepthTracksDeepestNesting(t *testing.T) {
	c := &Counters{}
	c.Enter()
	c.Enter()
	c.Enter()
	c.Leave()
	c.Leave()
	c.Enter()
	report := c.Report()
	if !strings.Contains(report, "peak call depth : 3") {
		t.Fatalf("Report() = %q; want it to mention a peak call depth of 3", report)
	}
}
