// Package topics provides a pluggable, topic-based help system for Cobra CLI applications.
// It extends the default Cobra help functionality to support arbitrary help topics
// loaded from a file system, typically one embedded in the binary.
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// TopicManager manages help topics for a Cobra application
type TopicManager struct {
	fsys         fs.FS
	root         string
	topics       map[string]*Topic
	originalHelp func(*cobra.Command, []string)
	extensions   []string
	renderer     Renderer
}

// Topic represents a help topic
type Topic struct {
	Name     string
	FilePath string
	Content  string
}

// Options configures the TopicManager
type Options struct {
	// Extensions is the list of file extensions to consider as topics
	// Defaults to [".txt", ".md"] if not specified
	Extensions []string

	// Renderer for formatting topic content (optional)
	// Defaults to PlainRenderer if not specified
	Renderer Renderer
}

// New creates a new TopicManager reading topics below root in fsys
func New(fsys fs.FS, root string) *TopicManager {
	return NewWithOptions(fsys, root, Options{})
}

// NewWithOptions creates a new TopicManager with custom options
func NewWithOptions(fsys fs.FS, root string, opts Options) *TopicManager {
	tm := &TopicManager{
		fsys:       fsys,
		root:       root,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}

	if len(tm.extensions) == 0 {
		tm.extensions = []string{".txt", ".md"}
	}
	if tm.renderer == nil {
		tm.renderer = &PlainRenderer{}
	}

	return tm
}

// scanTopics walks the topics root for help files
func (tm *TopicManager) scanTopics() error {
	if _, err := fs.Stat(tm.fsys, tm.root); err != nil {
		// no topics available
		return nil
	}

	return fs.WalkDir(tm.fsys, tm.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(p)
		supported := false
		for _, validExt := range tm.extensions {
			if ext == validExt {
				supported = true
				break
			}
		}
		if !supported {
			return nil
		}

		content, err := fs.ReadFile(tm.fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), ext)
		tm.topics[name] = &Topic{
			Name:     name,
			FilePath: p,
			Content:  string(content),
		}
		return nil
	})
}

// GetTopic retrieves a topic by name
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	// flag-style topics: --format -> format
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")

	if topic, exists := tm.topics[name]; exists {
		return topic, true
	}

	topic, exists := tm.topics["option-"+name]
	return topic, exists
}

// ListTopics returns all available topic names, sorted
func (tm *TopicManager) ListTopics() []string {
	topics := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		topics = append(topics, name)
	}
	sort.Strings(topics)
	return topics
}

func (tm *TopicManager) render(w io.Writer, topic *Topic) {
	_, _ = fmt.Fprint(w, tm.renderer.Render(topic.Content, path.Ext(topic.FilePath)))
}

func (tm *TopicManager) printTopicList(w io.Writer, appName string) {
	topics := tm.ListTopics()
	if len(topics) == 0 {
		_, _ = fmt.Fprintln(w, "No help topics available.")
		return
	}

	var options, general []string
	for _, name := range topics {
		if strings.HasPrefix(name, "option-") {
			options = append(options, strings.TrimPrefix(name, "option-"))
		} else {
			general = append(general, name)
		}
	}

	_, _ = fmt.Fprintln(w, "Available help topics:")
	if len(general) > 0 {
		_, _ = fmt.Fprintln(w, "\nGeneral topics:")
		for _, name := range general {
			_, _ = fmt.Fprintf(w, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		_, _ = fmt.Fprintln(w, "\nOption topics:")
		for _, name := range options {
			_, _ = fmt.Fprintf(w, "  --%s\n", name)
		}
	}
	_, _ = fmt.Fprintf(w, "\nUse '%s help <topic>' to read about a specific topic.\n", appName)
}

// Initialize sets up the topic-based help system with default extensions
func Initialize(rootCmd *cobra.Command, fsys fs.FS, root string) error {
	return InitializeWithOptions(rootCmd, fsys, root, Options{})
}

// InitializeWithOptions sets up the topic-based help system with custom options
func InitializeWithOptions(rootCmd *cobra.Command, fsys fs.FS, root string, opts Options) error {
	tm := NewWithOptions(fsys, root, opts)

	if err := tm.scanTopics(); err != nil {
		return fmt.Errorf("failed to scan topics: %w", err)
	}

	tm.originalHelp = rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + rootCmd.Name() + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + rootCmd.Name() + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, tm.ListTopics()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				tm.originalHelp(rootCmd, []string{})
				return
			}

			if args[0] == "topics" {
				tm.printTopicList(cmd.OutOrStdout(), rootCmd.Name())
				return
			}

			if topic, exists := tm.GetTopic(args[0]); exists {
				tm.render(cmd.OutOrStdout(), topic)
				return
			}

			// a command: show its help
			if target, _, err := rootCmd.Find(args); err == nil && target != rootCmd {
				tm.originalHelp(target, []string{})
				return
			}
			tm.originalHelp(rootCmd, args)
		},
	}

	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "help" {
			rootCmd.RemoveCommand(cmd)
			break
		}
	}
	rootCmd.AddCommand(helpCmd)
	rootCmd.SetHelpCommand(helpCmd)

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if topic, exists := tm.GetTopic(args[0]); exists {
				tm.render(cmd.OutOrStdout(), topic)
				return
			}
		}
		tm.originalHelp(cmd, args)
	})

	return nil
}
