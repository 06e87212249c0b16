package main

import (
	"github.com/urfave/cli/v2"
)

func newApp(e *env) *cli.App {
	return &cli.App{
		Name:      "educli",
		Usage:     "work with classes, assignments and cloud files from the terminal",
		Reader:    e.in,
		Writer:    e.out,
		ErrWriter: e.errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "YAML config file", EnvVars: []string{"EDU_CONFIG"}},
			&cli.StringFlag{Name: "base-url", Usage: "backend API root, e.g. http://localhost:8080/api"},
			&cli.StringFlag{Name: "session-dir", Usage: "directory holding the signed-in session"},
			&cli.StringFlag{Name: "redis-addr", Usage: "keep the session in Redis at this address"},
			&cli.StringFlag{Name: "profile", Usage: "session profile name"},
			&cli.StringFlag{Name: "log-level", Value: "warn", Usage: "log level (debug, info, warn, error)"},
			&cli.BoolFlag{Name: "json", Usage: "print JSON instead of text"},
		},
		After: func(*cli.Context) error {
			return e.close()
		},
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "sign in and remember the session",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
					&cli.StringFlag{Name: "password", Usage: "prompted when omitted"},
				},
				Action: e.login,
			},
			{
				Name:  "register",
				Usage: "create an account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
					&cli.StringFlag{Name: "password", Usage: "prompted when omitted"},
					&cli.StringFlag{Name: "role", Value: "STUDENT", Usage: "TEACHER or STUDENT"},
					&cli.StringFlag{Name: "real-name"},
					&cli.StringFlag{Name: "email"},
					&cli.StringFlag{Name: "phone"},
				},
				Action: e.register,
			},
			{
				Name:   "logout",
				Usage:  "sign out and forget the session",
				Action: e.logout,
			},
			{
				Name:   "whoami",
				Usage:  "show the signed-in user",
				Action: e.whoami,
			},
			{
				Name:  "classes",
				Usage: "list, join and manage classes",
				Subcommands: []*cli.Command{
					{Name: "list", Usage: "list your classes", Action: e.classesList},
					{Name: "join", Usage: "join a class", ArgsUsage: "INVITE_CODE", Action: e.classesJoin},
					{Name: "members", Usage: "list class members", ArgsUsage: "CLASS_ID", Action: e.classesMembers},
					{
						Name:  "create",
						Usage: "create a class",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "name", Required: true},
							&cli.StringFlag{Name: "description"},
						},
						Action: e.classesCreate,
					},
				},
			},
			{
				Name:  "courses",
				Usage: "browse courses",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "list courses",
						Flags:  []cli.Flag{&cli.Int64Flag{Name: "class", Usage: "only courses of this class"}},
						Action: e.coursesList,
					},
				},
			},
			{
				Name:  "assignments",
				Usage: "browse assignments",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "list assignments",
						Flags:  []cli.Flag{&cli.Int64Flag{Name: "course", Usage: "only assignments of this course"}},
						Action: e.assignmentsList,
					},
				},
			},
			{
				Name:  "submissions",
				Usage: "review submissions",
				Subcommands: []*cli.Command{
					{
						Name:      "grade",
						Usage:     "score a submission",
						ArgsUsage: "SUBMISSION_ID",
						Flags: []cli.Flag{
							&cli.Float64Flag{Name: "score", Required: true},
							&cli.StringFlag{Name: "feedback"},
						},
						Action: e.submissionsGrade,
					},
				},
			},
			{
				Name:  "discussions",
				Usage: "browse class discussions",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "list discussions",
						Flags:  []cli.Flag{&cli.Int64Flag{Name: "class", Usage: "only discussions of this class"}},
						Action: e.discussionsList,
					},
				},
			},
			{
				Name:  "files",
				Usage: "class cloud files",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "list files",
						Flags:  []cli.Flag{&cli.Int64Flag{Name: "class", Usage: "only files of this class"}},
						Action: e.filesList,
					},
					{
						Name:      "upload",
						Usage:     "upload a file to a class",
						ArgsUsage: "PATH",
						Flags: []cli.Flag{
							&cli.Int64Flag{Name: "class", Required: true},
							&cli.Int64Flag{Name: "folder"},
							&cli.StringFlag{Name: "description"},
							&cli.BoolFlag{Name: "private", Usage: "hide the file from students"},
						},
						Action: e.filesUpload,
					},
					{
						Name:      "download",
						Usage:     "download a file",
						ArgsUsage: "FILE_ID",
						Flags:     []cli.Flag{&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "destination path"}},
						Action:    e.filesDownload,
					},
				},
			},
			{
				Name:  "folders",
				Usage: "class cloud folders",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "list root folders of a class",
						Flags:  []cli.Flag{&cli.Int64Flag{Name: "class", Required: true}},
						Action: e.foldersList,
					},
					{
						Name:  "create",
						Usage: "create a folder",
						Flags: []cli.Flag{
							&cli.Int64Flag{Name: "class", Required: true},
							&cli.StringFlag{Name: "name", Required: true},
							&cli.Int64Flag{Name: "parent"},
						},
						Action: e.foldersCreate,
					},
					{
						Name:      "tree",
						Usage:     "show a folder and everything below it",
						ArgsUsage: "FOLDER_ID",
						Action:    e.foldersTree,
					},
				},
			},
			{
				Name:  "notifications",
				Usage: "your notifications",
				Subcommands: []*cli.Command{
					{Name: "list", Usage: "list notifications", Action: e.notificationsList},
					{
						Name:      "read",
						Usage:     "mark a notification, or all of them, as read",
						ArgsUsage: "[NOTIFICATION_ID]",
						Flags:     []cli.Flag{&cli.BoolFlag{Name: "all"}},
						Action:    e.notificationsRead,
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "show statistics for you or a class",
				Flags:  []cli.Flag{&cli.Int64Flag{Name: "class"}},
				Action: e.stats,
			},
			{
				Name:  "ai",
				Usage: "ask the teaching assistant",
				Subcommands: []*cli.Command{
					{
						Name:      "ask",
						Usage:     "ask a question",
						ArgsUsage: "QUESTION...",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "model"},
							&cli.StringFlag{Name: "context"},
						},
						Action: e.aiAsk,
					},
				},
			},
		},
	}
}
