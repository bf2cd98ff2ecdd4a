package main

import (
	"sort"
	"strings"

	"github.com/rytmctl/rytm/command"
	"github.com/rytmctl/rytm/external"
)

var (
	selectorWords = []string{
		external.SelectorGet,
		external.SelectorSet,
		external.SelectorQuery,
		external.SelectorSend,
		external.SelectorDebug,
		":save", ":load", ":ports", ":help", ":quit",
	}
	classWords      = classNames()
	identifierWords = identifierNames()
)

func classNames() []string {
	var ret []string
	for _, c := range command.Classes() {
		ret = append(ret, c.String())
	}
	return ret
}

func identifierNames() []string {
	seen := map[string]bool{
		command.KitSoundKeyword: true,
		command.PlockSet:        true,
		command.PlockGet:        true,
		command.PlockClear:      true,
	}
	for _, kind := range command.ObjectKinds() {
		for _, id := range command.Identifiers(kind) {
			seen[id.Name] = true
		}
	}
	ret := make([]string, 0, len(seen))
	for name := range seen {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// variants returns the type:variant words of the enumerated identifier typ.
func variants(typ string) []string {
	for _, kind := range command.ObjectKinds() {
		for _, id := range command.Identifiers(kind) {
			if id.Name != typ || id.Kind != command.EnumIdentifier {
				continue
			}
			ret := make([]string, 0, len(id.Variants()))
			for _, v := range id.Variants() {
				ret = append(ret, typ+":"+v)
			}
			return ret
		}
	}
	return nil
}

// complete is a liner.WordCompleter. It completes the whole word under the
// cursor, pos counted in runes, from what can appear at its position in a
// message; the part of the word after the cursor is replaced too.
func complete(line string, pos int) (head string, completions []string, tail string) {
	r := []rune(line)
	pos = min(max(pos, 0), len(r))
	start, end := pos, pos
	for start > 0 && r[start-1] != ' ' {
		start--
	}
	for end < len(r) && r[end] != ' ' {
		end++
	}
	head, word, tail := string(r[:start]), string(r[start:end]), string(r[end:])
	for _, c := range candidates(strings.Fields(head), word) {
		if strings.HasPrefix(c, word) {
			completions = append(completions, c)
		}
	}
	return head, completions, tail
}

func candidates(before []string, word string) []string {
	switch {
	case len(before) == 0:
		return selectorWords
	case before[0] == external.SelectorDebug:
		if len(before) == 1 {
			return []string{"0", "1"}
		}
		return nil
	case strings.HasPrefix(before[0], ":"):
		return nil
	case len(before) == 1:
		return classWords
	}
	if typ, _, ok := strings.Cut(word, ":"); ok {
		return variants(typ)
	}
	return identifierWords
}
