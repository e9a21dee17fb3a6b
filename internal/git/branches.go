package git

import (
	"bufio"
	"strings"
)

// RemoteBranchExists reports whether branches, as returned by
// ListRemoteBranches, contains name on remote. Only an exact match of the
// part after "<remote>/" counts, so "feat" does not match "origin/feat-x".
func RemoteBranchExists(branches []string, remote, name string) bool {
	for _, b := range branches {
		rest, ok := strings.CutPrefix(b, remote+"/")
		if ok && rest == name {
			return true
		}
	}
	return false
}

func parseRemoteBranches(out string) []string {
	var branches []string
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		b := strings.TrimSpace(scanner.Text())
		if b == "" || strings.HasSuffix(b, "/HEAD") {
			continue
		}
		branches = append(branches, b)
	}
	return branches
}

// subject returns the first line of a commit message.
func subject(msg string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(msg), "\n")
	return strings.TrimSpace(line)
}
