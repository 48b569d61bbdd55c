package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"fortio.org/log"

	calc "github.com/zephyrtronium/calculator"
)

func main() {
	var (
		inname, verb, prompt string
		with                 [][2]string
		echo, verbose        bool
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "", "result formatting verb, e.g. %g (default shortest decimal)")
	flag.StringVar(&prompt, "prompt", ">> ", "prompt for interactive input")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.BoolVar(&echo, "echo", false, "print expressions in postfix notation")
	flag.BoolVar(&verbose, "v", false, "verbose logging")
	flag.Parse()
	if verbose {
		log.SetLogLevel(log.Verbose)
	}

	c := calc.New()
	for _, d := range with {
		nm, vl := d[0], d[1]
		r, err := calc.New().Eval(vl)
		if err != nil {
			log.Fatalf("setting %s: %v", nm, err)
		}
		c.Env().Set(nm, r)
	}

	s := session{c: c, verb: verb, echo: echo, out: os.Stdout, errs: os.Stderr}
	for _, arg := range flag.Args() {
		s.line(arg)
	}
	f, interactive, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if f == nil {
		return
	}
	if interactive {
		s.prompt = prompt
		fmt.Fprintln(s.out, "To exit, enter ?quit")
	}
	if err := s.loop(f); err != nil {
		log.Fatalf("reading input: %v", err)
	}
}

// session evaluates lines with one calculator and prints the results.
type session struct {
	c      *calc.Calculator
	verb   string
	prompt string
	echo   bool
	out    io.Writer
	errs   io.Writer
}

// loop reads lines from in until EOF or a line beginning with ?.
func (s *session) loop(in io.Reader) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, s.prompt)
		if !sc.Scan() {
			if s.prompt != "" {
				fmt.Fprintln(s.out)
			}
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "?") {
			log.LogVf("quit on %q", line)
			return nil
		}
		if line == "" {
			continue
		}
		s.line(line)
	}
}

// line evaluates a single line and prints its result or error.
func (s *session) line(line string) {
	if s.echo {
		expr := line
		if _, rhs, ok := strings.Cut(line, "="); ok {
			expr = rhs
		}
		if e, err := calc.Parse(expr); err == nil {
			fmt.Fprintf(s.out, "%v : ", e)
		}
	}
	r, err := s.c.Eval(line)
	if err != nil {
		fmt.Fprintf(s.errs, "Error:\n%v\n", err)
		return
	}
	if s.verb == "" {
		fmt.Fprintf(s.out, " %s\n", calc.FormatResult(r))
		return
	}
	fmt.Fprintf(s.out, " "+s.verb+"\n", r)
}

func infile(inname string, std bool) (io.Reader, bool, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, false, err
		}
		return f, false, nil
	case inname == "-", std:
		return os.Stdin, true, nil
	}
	return nil, false, nil
}
