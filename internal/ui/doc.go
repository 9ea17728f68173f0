// Package ui implements roster's terminal interface with Bubble Tea.
//
// # Layout
//
//	┌ header: record count, filter/sort summary, API host, last update ┐
//	│ command bar: key hints for the current mode                      │
//	┌──────────────────────────── Employees ───────────────────────────┐
//	│ 1 id   2 name ▲          3 salary   4 age   actions              │
//	│ #1     Ann                  5,000      30   edit · delete        │
//	│                    Rows per page: 10   1 – 2 of 2   page 1/1     │
//	└──────────────────────────────────────────────────────────────────┘
//
// # Data Flow
//
// The model holds no records of its own. On every tick and after every key
// it re-reads view.Controller.CurrentView and the store's snapshot metadata.
// Filter, sort and page keys call the controller's setters; add, edit and
// delete go through command.Coordinator, which calls back into the model's
// dialogHost to open the matching modal. The modal's answer is handed back
// with Confirm or Cancel.
//
// # Modals
//
// The add/edit form uses bubbles/textinput fields with inline validation.
// Delete asks y/n. Enter confirms and esc cancels in both.
//
// # Log View
//
// L opens a bubbles/viewport over the tail of roster's glog INFO file,
// re-read on every tick. v cycles the minimum severity and f toggles
// following the end of the file.
//
// # Themes
//
// Dracula, Slate and Paper, cycled with T and saved through package prefs.
package ui
