package git

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// Status is the state of a working copy as read from git.
type Status struct {
	// Branch is the checked-out branch, empty when HEAD is detached.
	Branch string
	// Tracking is the upstream of Branch, e.g. "origin/staging", empty when
	// none is configured.
	Tracking string
	Ahead    int
	Behind   int

	Staged    []string
	Unstaged  []string
	Untracked []string
	Conflicts []string
}

// HasLocalChanges reports whether the working copy differs from HEAD.
func (s *Status) HasLocalChanges() bool {
	return len(s.Staged) > 0 || len(s.Unstaged) > 0 || len(s.Untracked) > 0 || len(s.Conflicts) > 0
}

// parseStatus parses the output of "git status --porcelain=v2 --branch".
func parseStatus(out string) (*Status, error) {
	st := &Status{}

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		switch line[0] {
		case '#':
			if err := st.parseHeader(line); err != nil {
				return nil, err
			}
		case '1':
			// 1 <XY> <sub> <mH> <mI> <mW> <hH> <hI> <path>
			fields := strings.SplitN(line, " ", 9)
			if len(fields) < 9 {
				return nil, fmt.Errorf("malformed changed entry %q", line)
			}
			st.addChange(fields[1], fields[8])
		case '2':
			// 2 <XY> <sub> <mH> <mI> <mW> <hH> <hI> <X><score> <path><tab><origPath>
			fields := strings.SplitN(line, " ", 10)
			if len(fields) < 10 {
				return nil, fmt.Errorf("malformed renamed entry %q", line)
			}
			path, _, _ := strings.Cut(fields[9], "\t")
			st.addChange(fields[1], path)
		case 'u':
			// u <XY> <sub> <m1> <m2> <m3> <mW> <h1> <h2> <h3> <path>
			fields := strings.SplitN(line, " ", 11)
			if len(fields) < 11 {
				return nil, fmt.Errorf("malformed unmerged entry %q", line)
			}
			st.Conflicts = append(st.Conflicts, fields[10])
		case '?':
			st.Untracked = append(st.Untracked, strings.TrimPrefix(line, "? "))
		case '!':
			// ignored
		default:
			return nil, fmt.Errorf("unknown status entry %q", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading status: %w", err)
	}

	return st, nil
}

func (s *Status) parseHeader(line string) error {
	key, value, _ := strings.Cut(strings.TrimPrefix(line, "# "), " ")
	switch key {
	case "branch.head":
		if value != "(detached)" {
			s.Branch = value
		}
	case "branch.upstream":
		s.Tracking = value
	case "branch.ab":
		a, b, ok := strings.Cut(value, " ")
		if !ok {
			return fmt.Errorf("malformed ahead/behind header %q", line)
		}
		var err error
		if s.Ahead, err = strconv.Atoi(strings.TrimPrefix(a, "+")); err != nil {
			return fmt.Errorf("parsing ahead count: %w", err)
		}
		if s.Behind, err = strconv.Atoi(strings.TrimPrefix(b, "-")); err != nil {
			return fmt.Errorf("parsing behind count: %w", err)
		}
	}
	return nil
}

func (s *Status) addChange(xy, path string) {
	if len(xy) != 2 {
		return
	}
	if xy[0] != '.' {
		s.Staged = append(s.Staged, path)
	}
	if xy[1] != '.' {
		s.Unstaged = append(s.Unstaged, path)
	}
}
