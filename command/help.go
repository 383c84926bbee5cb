package command

import (
	"fmt"
	"sort"
	"strings"
)

const helpWidth = 80

// Help returns the help text for arg, or the command listing when arg is
// empty. Missing help is reported in the text, never as an error.
func (r *Router) Help(arg string) string {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return r.listing()
	}

	if text, ok := r.lookupHelp(arg); ok {
		return text
	}
	if len(arg) > 1 && arg[0] == MetaChar {
		if text, ok := r.lookupHelp(Undotted(arg)); ok {
			return text
		}
	}
	return fmt.Sprintf(r.NoHelp, arg)
}

// lookupHelp prefers long-form help over the one-line doc.
func (r *Router) lookupHelp(name string) (string, bool) {
	if topic, ok := r.topics[name]; ok {
		return topic(), true
	}
	reg, ok := r.registry[name]
	if !ok {
		return "", false
	}
	if reg.Help != nil {
		return reg.Help(), true
	}
	if reg.Doc != "" {
		return reg.Doc, true
	}
	return "", false
}

// Groups partitions triggers into documented commands, stand-alone help
// topics and undocumented commands, each sorted by display name.
func (r *Router) Groups() (documented, topics, undocumented []string) {
	for trigger, reg := range r.registry {
		_, hasTopic := r.topics[trigger]
		if hasTopic || reg.Help != nil || reg.Doc != "" {
			documented = append(documented, Dotted(trigger))
		} else {
			undocumented = append(undocumented, Dotted(trigger))
		}
	}
	for name := range r.topics {
		if _, ok := r.registry[name]; !ok {
			topics = append(topics, Dotted(name))
		}
	}

	sort.Strings(documented)
	sort.Strings(topics)
	sort.Strings(undocumented)
	return documented, topics, undocumented
}

func (r *Router) listing() string {
	documented, topics, undocumented := r.Groups()

	var sb strings.Builder
	if r.DocLeader != "" {
		sb.WriteString(r.DocLeader + "\n")
	}
	r.writeTopics(&sb, r.DocHeader, documented)
	r.writeTopics(&sb, r.MiscHeader, topics)
	r.writeTopics(&sb, r.UndocHeader, undocumented)
	return strings.TrimRight(sb.String(), "\n")
}

func (r *Router) writeTopics(sb *strings.Builder, header string, names []string) {
	if len(names) == 0 {
		return
	}
	sb.WriteString(header + "\n")
	if r.Ruler != "" {
		sb.WriteString(strings.Repeat(r.Ruler, len(header)) + "\n")
	}
	sb.WriteString(columnize(names, helpWidth-1))
	sb.WriteString("\n")
}

// columnize lays names out column-major in as few rows as fit width, with
// two spaces between columns.
func columnize(names []string, width int) string {
	size := len(names)
	if size == 0 {
		return "<empty>\n"
	}
	if size == 1 {
		return names[0] + "\n"
	}

	nrows, colWidths := size, []int(nil)
	for rows := 1; rows < size; rows++ {
		ncols := (size + rows - 1) / rows
		widths := make([]int, 0, ncols)
		total := -2
		for col := 0; col < ncols; col++ {
			w := 0
			for row := 0; row < rows; row++ {
				i := row + rows*col
				if i >= size {
					break
				}
				w = max(w, len(names[i]))
			}
			widths = append(widths, w)
			total += w + 2
			if total > width {
				break
			}
		}
		if total <= width {
			nrows, colWidths = rows, widths
			break
		}
	}

	if colWidths == nil {
		return strings.Join(names, "\n") + "\n"
	}

	var sb strings.Builder
	for row := 0; row < nrows; row++ {
		var cells []string
		for col := range colWidths {
			i := row + nrows*col
			if i >= size {
				break
			}
			cells = append(cells, names[i])
		}
		for col := 0; col < len(cells)-1; col++ {
			cells[col] += strings.Repeat(" ", colWidths[col]-len(cells[col]))
		}
		sb.WriteString(strings.Join(cells, "  ") + "\n")
	}
	return sb.String()
}
