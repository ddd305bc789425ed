package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/domain"
)

const IssueDependencyCycle = "dependency-cycle"

// dependencyCycles runs Tarjan's SCC over dependency edges and reports
// every strongly connected group of two or more layers, plus layers that
// depend on themselves. Unknown targets are skipped; they are reported as
// orphaned references elsewhere.
func dependencyCycles(layers []visited) []Issue {
	byID := make(map[int]visited, len(layers))
	order := make([]int, 0, len(layers))
	for _, v := range layers {
		if _, dup := byID[v.layer.ID]; dup {
			continue
		}
		byID[v.layer.ID] = v
		order = append(order, v.layer.ID)
	}

	index := 0
	stack := []int{}
	onStack := map[int]bool{}
	id := map[int]int{}
	low := map[int]int{}
	var issues []Issue

	var dfs func(v int)
	dfs = func(v int) {
		index++
		id[v], low[v] = index, index
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range byID[v].layer.Dependencies {
			if _, known := byID[w]; !known {
				continue
			}
			if _, seen := id[w]; !seen {
				dfs(w)
				if low[w] < low[v] {
					low[v] = low[w]
				}
			} else if onStack[w] && id[w] < low[v] {
				low[v] = id[w]
			}
		}

		if low[v] != id[v] {
			return
		}
		comp := []int{}
		for {
			w := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			onStack[w] = false
			comp = append(comp, w)
			if w == v {
				break
			}
		}
		if len(comp) > 1 || dependsOn(byID[v].layer, v) {
			issues = append(issues, cycleIssue(comp, byID))
		}
	}

	for _, v := range order {
		if _, seen := id[v]; !seen {
			dfs(v)
		}
	}
	return issues
}

func dependsOn(l *domain.Layer, id int) bool {
	for _, d := range l.Dependencies {
		if d == id {
			return true
		}
	}
	return false
}

func cycleIssue(comp []int, byID map[int]visited) Issue {
	sort.Ints(comp)
	names := make([]string, 0, len(comp))
	for _, id := range comp {
		names = append(names, fmt.Sprintf("%d (%s)", id, byID[id].layer.Name))
	}
	msg := fmt.Sprintf("Layers depend on each other: %s", strings.Join(names, ", "))
	if len(comp) == 1 {
		msg = fmt.Sprintf("Layer depends on itself: %s", names[0])
	}
	return Issue{
		Type:      IssueDependencyCycle,
		Severity:  SeverityWarning,
		Context:   byID[comp[0]].context,
		Reference: comp[0],
		Message:   msg,
	}
}
