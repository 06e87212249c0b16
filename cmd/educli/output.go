package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/MrEthical07/goEdu/api"
	"github.com/MrEthical07/goEdu/session"
)

// render prints v as indented JSON with --json, otherwise as a compact table.
func (e *env) render(c *cli.Context, v any) error {
	if c.Bool("json") {
		enc := json.NewEncoder(e.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	tw := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
	writeText(tw, v)
	return tw.Flush()
}

func writeText(w io.Writer, v any) {
	switch x := v.(type) {
	case session.Session:
		fmt.Fprintf(w, "user\t%s (#%d)\nrole\t%s\n", x.Username, x.UserID, x.Role)
		if x.RealName != "" {
			fmt.Fprintf(w, "name\t%s\n", x.RealName)
		}
	case []api.Class:
		fmt.Fprintln(w, "ID\tNAME\tCODE\tMEMBERS")
		for _, cl := range x {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", cl.ID, cl.Name, firstNonEmpty(cl.Code, cl.InviteCode), cl.MemberCount)
		}
	case api.Class:
		writeText(w, []api.Class{x})
	case []api.Member:
		fmt.Fprintln(w, "ID\tUSERNAME\tNAME\tROLE")
		for _, m := range x {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", m.ID, m.Username, m.RealName, m.Role)
		}
	case []api.Course:
		fmt.Fprintln(w, "ID\tTITLE\tCLASS")
		for _, co := range x {
			fmt.Fprintf(w, "%d\t%s\t%d\n", co.ID, co.Title, co.ClassID)
		}
	case []api.Assignment:
		fmt.Fprintln(w, "ID\tTITLE\tCOURSE\tDEADLINE")
		for _, a := range x {
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", a.ID, a.Title, a.CourseID, a.Deadline)
		}
	case api.Submission:
		score := "-"
		if x.Score != nil {
			score = fmt.Sprintf("%g", *x.Score)
		}
		fmt.Fprintf(w, "submission\t%d\nassignment\t%d\nscore\t%s\n", x.ID, x.AssignmentID, score)
	case []api.Discussion:
		fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tCOMMENTS")
		for _, d := range x {
			title := d.Title
			if d.IsPinned {
				title = "[pinned] " + title
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", d.ID, title, d.AuthorName, d.CommentCount)
		}
	case []api.CloudFile:
		fmt.Fprintln(w, "ID\tNAME\tSIZE\tFOLDER")
		for _, f := range x {
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", f.ID, firstNonEmpty(f.OriginalFileName, f.FileName), f.FileSize, f.FolderName)
		}
	case api.CloudFile:
		writeText(w, []api.CloudFile{x})
	case []api.CloudFolder:
		fmt.Fprintln(w, "ID\tPATH\tFILES")
		writeFolders(w, x, 0)
	case api.CloudFolder:
		fmt.Fprintln(w, "ID\tPATH\tFILES")
		writeFolders(w, []api.CloudFolder{x}, 0)
	case []api.Notification:
		fmt.Fprintln(w, "ID\tREAD\tTITLE")
		for _, n := range x {
			read := " "
			if n.IsRead {
				read = "x"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\n", n.ID, read, n.Title)
		}
	case api.Stats:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "%s\t%v\n", k, x[k])
		}
	case api.ChatResponse:
		fmt.Fprintln(w, x.Answer)
	case string:
		fmt.Fprintln(w, x)
	default:
		data, _ := json.Marshal(x)
		fmt.Fprintln(w, string(data))
	}
}

func writeFolders(w io.Writer, folders []api.CloudFolder, depth int) {
	for _, f := range folders {
		fmt.Fprintf(w, "%d\t%s%s\t%d\n", f.ID, strings.Repeat("  ", depth), f.Name, f.FileCount)
		writeFolders(w, f.SubFolders, depth+1)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
