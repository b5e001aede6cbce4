// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	InputOpenFailedId Id = iota + 1
	MalformedRowId
	OutputExistsId
	OutputWriteFailedId
	ConfigLoadFailedId
	InvalidArgumentsId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation pages for this issue
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	inputOpenFailedIssue = &Issue{
		id: InputOpenFailedId,
		mdMsg: `
# Input table couldn't be opened!

Either the file doesn't exist, or you don't have permissions to read it.

## Things you can try:
- Check the path you passed as the first argument
- Make sure the file is readable:
~~~
$ ls -l ~/input.csv
~~~`,
	}

	malformedRowIssue = &Issue{
		id: MalformedRowId,
		mdMsg: `
# Malformed row in the input table!

Every row must start with a module name followed by its members.
A row was found with members but an empty first field.

## Expected layout:
~~~
ModA,gene1,gene2,gene3
ModB,gene2,gene3,gene4
~~~

## Things you can try:
- Fill in the missing module name, or delete the row
- Use a .tsv extension if the table is tab separated
- Pass --skip-header if the first row holds column titles`,
	}

	outputExistsIssue = &Issue{
		id: OutputExistsId,
		mdMsg: `
# Output file already exists!

The run stopped because overwriting an existing output table was declined.

## Things you can try:
- Pass -f to overwrite the output tables without asking
- Choose another base path with -o:
~~~
$ modoverlap ~/input.csv -o ~/results/run2
~~~`,
	}

	outputWriteFailedIssue = &Issue{
		id: OutputWriteFailedId,
		mdMsg: `
# Output file couldn't be written!

No output table was replaced; all three tables are written together.

## Things you can try:
- Check that the output directory exists and is writable
- Check the free disk space
- Choose another base path with -o`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the modoverlap configuration file.

## Configuration file locations:
- Linux: ~/.config/modoverlap/config.cue (or config.toml)
- macOS: ~/Library/Application Support/modoverlap/config.cue
- Windows: %APPDATA%\modoverlap\config.cue

## Things you can try:
- Show the effective configuration:
~~~
$ modoverlap config show
~~~
- Check the configuration syntax
- Remove the config file to use defaults

## Example configuration:
~~~cue
precision: 6
workers: 4
skip_header: false
log: level: "info"
~~~`,
	}

	invalidArgumentsIssue = &Issue{
		id: InvalidArgumentsId,
		mdMsg: `
# Invalid arguments!

## Usage:
~~~
$ modoverlap <input table> [-o <output path>] [-f] [-v]
~~~

## Things you can try:
- Run ` + "`modoverlap --help`" + ` to see every option`,
	}

	issues = map[Id]*Issue{
		inputOpenFailedIssue.Id():   inputOpenFailedIssue,
		malformedRowIssue.Id():      malformedRowIssue,
		outputExistsIssue.Id():      outputExistsIssue,
		outputWriteFailedIssue.Id(): outputWriteFailedIssue,
		configLoadFailedIssue.Id():  configLoadFailedIssue,
		invalidArgumentsIssue.Id():  invalidArgumentsIssue,
	}
)

// Values returns every registered issue ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
