package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/artem13815/ats/pkg/pipeline"
	"github.com/artem13815/ats/pkg/preselection"
)

var errQuit = errors.New("quit")

const help = `commands:
  list                          show the current page
  reload                        fetch a fresh snapshot
  hide <id>                     hide a row until the next reload
  dismiss                       close the load error banner
  q <text>                      search by name, email or job title (empty clears)
  general <status|Todos>        filter by general status
  job <title|Todos>             filter by job title
  stage <name> <status|Todos>   filter by stage status
  order none|best|worst         sort by similarity
  clear                         reset all filters
  size 10|25|50                 page size
  next | prev | page <n>        navigate
  sel <id>...                   toggle selection
  selpage                       toggle every id on the page
  bulk <stage> <status>         apply to the selection
  discard                       reject preselection and result for the selection
  obs <id> <stage> <text>       save an observation
  quit`

// console executes one command line against a preselection session.
type console struct {
	s   *preselection.Session
	out io.Writer
}

func (c *console) exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), cmd))

	switch cmd {
	case "help", "?":
		fmt.Fprintln(c.out, help)
		return nil
	case "quit", "exit":
		return errQuit
	case "list":
	case "reload":
		if err := c.s.Store.Load(ctx); err != nil {
			return err
		}
	case "hide":
		if len(args) != 1 {
			return fmt.Errorf("usage: hide <id>")
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		c.s.Store.RemoveLocally(id)
	case "dismiss":
		c.s.Store.DismissError()
	case "q":
		c.s.SetQuery(rest)
	case "general":
		cr := c.s.Criteria()
		cr.GeneralStatus = orAll(rest)
		if err := c.s.SetCriteria(cr); err != nil {
			return err
		}
	case "job":
		cr := c.s.Criteria()
		cr.JobTitle = orAll(rest)
		if err := c.s.SetCriteria(cr); err != nil {
			return err
		}
	case "stage":
		if len(args) != 2 {
			return fmt.Errorf("usage: stage <name> <status|Todos>")
		}
		cr := c.s.Criteria()
		cr.StageStatuses[pipeline.Stage(args[0])] = args[1]
		if err := c.s.SetCriteria(cr); err != nil {
			return err
		}
	case "order":
		if len(args) != 1 {
			return fmt.Errorf("usage: order none|best|worst")
		}
		cr := c.s.Criteria()
		cr.SimilarityOrder = preselection.SimilarityOrder(args[0])
		if err := c.s.SetCriteria(cr); err != nil {
			return err
		}
	case "clear":
		c.s.ClearCriteria()
	case "size":
		n, err := intArg(args)
		if err != nil {
			return err
		}
		if err := c.s.SetPageSize(n); err != nil {
			return err
		}
	case "next":
		c.s.NextPage()
	case "prev":
		c.s.PrevPage()
	case "page":
		n, err := intArg(args)
		if err != nil {
			return err
		}
		c.s.GoTo(n)
	case "sel":
		for _, a := range args {
			id, err := strconv.ParseInt(a, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", a)
			}
			c.s.Selection.Toggle(id)
		}
	case "selpage":
		c.s.SelectAllOnPage()
	case "bulk":
		if len(args) != 2 {
			return fmt.Errorf("usage: bulk <stage> <status>")
		}
		if err := c.s.Coordinator().ApplyBulkStageChange(ctx, pipeline.Stage(args[0]), pipeline.StageStatus(args[1])); err != nil {
			return err
		}
	case "discard":
		if err := c.s.Coordinator().DiscardSelected(ctx); err != nil {
			return err
		}
	case "obs":
		if len(args) < 3 {
			return fmt.Errorf("usage: obs <id> <stage> <text>")
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		app, ok := c.s.Store.Get(id)
		if !ok {
			return fmt.Errorf("application %d not found", id)
		}
		text := strings.Join(args[2:], " ")
		if err := c.s.Coordinator().SaveObservation(ctx, app, pipeline.Stage(args[1]), text); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown command %q, try help", cmd)
	}
	c.render()
	return nil
}

func (c *console) render() {
	v := c.s.View()
	if v.Error != "" {
		fmt.Fprintln(c.out, "! "+v.Error)
	}
	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEL\tID\tCANDIDATE\tEMAIL\tJOB\tMATCH\tGENERAL\tSTAGES")
	for _, r := range v.Items {
		mark := " "
		if r.Selected {
			mark = "x"
		}
		match := "-"
		if r.SimilarityPercent != nil {
			match = strconv.FormatFloat(*r.SimilarityPercent, 'f', 1, 64) + "%"
		}
		stages := make([]string, 0, len(pipeline.Stages))
		for _, st := range pipeline.Stages {
			stages = append(stages, string(st)[:3]+"="+string(r.Stages[st]))
		}
		fmt.Fprintf(tw, "[%s]\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			mark, r.ID, r.UserName(), r.UserEmail(), r.JobTitle(), match, r.General, strings.Join(stages, " "))
	}
	_ = tw.Flush()
	fmt.Fprintf(c.out, "page %d/%d, %d results, %d selected\n", v.Page, v.TotalPages, v.Total, len(v.Selected))
	if len(v.Stale) > 0 {
		fmt.Fprintf(c.out, "selected but no longer listed: %v\n", v.Stale)
	}
}

func orAll(v string) string {
	if v == "" {
		return preselection.All
	}
	return v
}

func intArg(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected one number")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", args[0])
	}
	return n, nil
}
