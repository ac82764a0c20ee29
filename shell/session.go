// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

// Options - session behaviour
type Options struct {
	// duplicate inserts, absent deletes and extremes of an empty set
	// are reported as errors instead of being silently accepted
	Strict bool

	// write each command before its output
	Echo bool
}

// Session - executes commands against a set
type Session struct {
	log     *logger.L
	set     Set
	w       io.Writer
	options Options
	line    int
}

// text shown for an empty result
const emptyText = "(empty)"

// NewSession - create a session writing its results to w
func NewSession(log *logger.L, set Set, w io.Writer, options Options) *Session {
	return &Session{
		log:     log,
		set:     set,
		w:       w,
		options: options,
	}
}

// Line - number of lines read by the latest Run
func (s *Session) Line() int {
	return s.line
}

// Run - execute all lines from a reader, stopping at the first error
func (s *Session) Run(r io.Reader) error {
	s.line = 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s.line += 1
		if err := s.Execute(scanner.Text()); nil != err {
			s.log.Errorf("line: %d  error: %s", s.line, err)
			return err
		}
	}
	return scanner.Err()
}

// Execute - process one command line
func (s *Session) Execute(line string) error {
	line = strings.TrimSpace(line)
	if "" == line || strings.HasPrefix(line, "#") {
		return nil
	}

	words := strings.Fields(line)
	command := strings.ToLower(words[0])
	arguments := words[1:]

	s.log.Debugf("command: %q  arguments: %q", command, arguments)

	if s.options.Echo {
		fmt.Fprintf(s.w, "> %s\n", line)
	}

	switch command {
	case "insert", "add":
		return s.insert(arguments)

	case "delete", "remove":
		return s.delete(arguments)

	case "contains", "has":
		if err := exactly(1, arguments); nil != err {
			return err
		}
		found, err := s.set.Contains(arguments[0])
		if nil != err {
			return err
		}
		fmt.Fprintf(s.w, "%v\n", found)

	case "size", "count":
		if err := exactly(0, arguments); nil != err {
			return err
		}
		fmt.Fprintf(s.w, "%d\n", s.set.Count())

	case "empty":
		if err := exactly(0, arguments); nil != err {
			return err
		}
		fmt.Fprintf(s.w, "%v\n", 0 == s.set.Count())

	case "height":
		if err := exactly(0, arguments); nil != err {
			return err
		}
		fmt.Fprintf(s.w, "%d\n", s.set.Height())

	case "min":
		if err := exactly(0, arguments); nil != err {
			return err
		}
		return s.extreme(s.set.Min())

	case "max":
		if err := exactly(0, arguments); nil != err {
			return err
		}
		return s.extreme(s.set.Max())

	case "inorder", "list":
		if err := exactly(0, arguments); nil != err {
			return err
		}
		s.sequence(s.set.InOrder())

	case "preorder":
		if err := exactly(0, arguments); nil != err {
			return err
		}
		s.sequence(s.set.PreOrder())

	case "postorder":
		if err := exactly(0, arguments); nil != err {
			return err
		}
		s.sequence(s.set.PostOrder())

	case "clear":
		if err := exactly(0, arguments); nil != err {
			return err
		}
		s.log.Infof("clear: discarding: %d values", s.set.Count())
		s.set.Clear()

	case "print":
		if err := exactly(0, arguments); nil != err {
			return err
		}
		if 0 == s.set.Print(s.w) {
			fmt.Fprintln(s.w, emptyText)
		}

	case "check":
		if err := exactly(0, arguments); nil != err {
			return err
		}
		if err := s.set.Check(); nil != err {
			s.log.Criticalf("check: %s", err)
			fmt.Fprintf(s.w, "fail: %s\n", err)
			return fault.ErrTreeCheckFailed
		}
		fmt.Fprintln(s.w, "ok")

	case "help", "?":
		fmt.Fprint(s.w, helpText)

	default:
		s.log.Warnf("invalid command: %q", command)
		return fault.ErrInvalidCommand
	}
	return nil
}

func (s *Session) insert(arguments []string) error {
	if 0 == len(arguments) {
		return fault.ErrMissingArgument
	}
	for _, value := range arguments {
		added, err := s.set.Insert(value)
		if nil != err {
			return err
		}
		if added {
			fmt.Fprintf(s.w, "+ %s\n", value)
			continue
		}
		if s.options.Strict {
			return fault.ErrValueExists
		}
		fmt.Fprintf(s.w, "= %s\n", value)
	}
	return nil
}

func (s *Session) delete(arguments []string) error {
	if 0 == len(arguments) {
		return fault.ErrMissingArgument
	}
	for _, value := range arguments {
		removed, err := s.set.Delete(value)
		if nil != err {
			return err
		}
		if removed {
			fmt.Fprintf(s.w, "- %s\n", value)
			continue
		}
		if s.options.Strict {
			return fault.ErrValueNotFound
		}
		fmt.Fprintf(s.w, "? %s\n", value)
	}
	return nil
}

func (s *Session) extreme(value string, ok bool) error {
	if ok {
		fmt.Fprintln(s.w, value)
		return nil
	}
	if s.options.Strict {
		return fault.ErrEmptyTree
	}
	fmt.Fprintln(s.w, emptyText)
	return nil
}

func (s *Session) sequence(values []string) {
	fmt.Fprintln(s.w, strings.Join(values, " "))
}

// check the argument count of a command
func exactly(n int, arguments []string) error {
	switch {
	case len(arguments) < n:
		return fault.ErrMissingArgument
	case len(arguments) > n:
		return fault.ErrTooManyArguments
	}
	return nil
}

const helpText = `commands:
  insert|add VALUE...      add values, "+" added, "=" already present
  delete|remove VALUE...   remove values, "-" removed, "?" not present
  contains|has VALUE       true if value is present
  size|count               number of values
  empty                    true if there are no values
  height                   height of the tree
  min                      lowest value
  max                      highest value
  inorder|list             values in ascending order
  preorder                 values with each node before its sub-trees
  postorder                values with each node after its sub-trees
  clear                    discard all values
  print                    draw the tree
  check                    verify the tree invariants
  help|?                   this text
`
