// Package scaffold generates new projects from embedded template sets. It
// powers the "stencil create" command: each set carries a template.yaml
// descriptor naming the scripts to merge into the project manifest and the
// dependencies to install, plus the files to render.
package scaffold
