// Copyright 2024 Fantom Foundation
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package utils

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// Printer emits a report of a command.
type Printer interface {
	Print() error
	Close()
}

// Printers emits a report to several destinations.
type Printers struct {
	printers []Printer
}

func NewPrinters() *Printers {
	return &Printers{[]Printer{}}
}

// Print emits the report to all destinations and joins their errors.
func (ps *Printers) Print() error {
	var errs []error
	for _, p := range ps.printers {
		errs = append(errs, p.Print())
	}
	return errors.Join(errs...)
}

func (ps *Printers) Close() {
	for _, p := range ps.printers {
		p.Close()
	}
}

func (ps *Printers) AddPrinter(p Printer) *Printers {
	ps.printers = append(ps.printers, p)
	return ps
}

type PrintToWriter struct {
	w io.Writer
	f func() string
}

func (p *PrintToWriter) Print() error {
	_, err := fmt.Fprintln(p.w, p.f())
	return err
}

func (p *PrintToWriter) Close() {}

func NewPrintToWriter(w io.Writer, f func() string) *PrintToWriter {
	return &PrintToWriter{w, f}
}

func NewPrintToConsole(f func() string) *PrintToWriter {
	return &PrintToWriter{os.Stdout, f}
}

func (ps *Printers) AddPrintToWriter(w io.Writer, f func() string) *Printers {
	return ps.AddPrinter(NewPrintToWriter(w, f))
}

// AddPrintToConsole prints to stdout unless the console is disabled.
func (ps *Printers) AddPrintToConsole(isDisabled bool, f func() string) *Printers {
	if isDisabled {
		return ps
	}
	return ps.AddPrinter(NewPrintToConsole(f))
}

type PrintToFile struct {
	filepath string
	f        func() string
}

func (p *PrintToFile) Print() error {
	file, err := os.OpenFile(p.filepath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("unable to print to file %s - %v", p.filepath, err)
	}
	defer file.Close()
	_, err = file.WriteString(p.f())
	return err
}

func (p *PrintToFile) Close() {}

func NewPrintToFile(filepath string, f func() string) *PrintToFile {
	return &PrintToFile{filepath, f}
}

func (ps *Printers) AddPrintToFile(filepath string, f func() string) *Printers {
	if filepath != "" {
		ps.AddPrinter(NewPrintToFile(filepath, f))
	}
	return ps
}

// PrintToDb inserts the rows of a report into a database table.
type PrintToDb struct {
	db     *sql.DB
	insert string
	f      func() [][]any
}

func (p *PrintToDb) Print() error {
	tx, err := p.db.Begin()
	if err != nil {
		return fmt.Errorf("unable to begin tx; %w", err)
	}

	stmt, err := tx.Prepare(p.insert)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("unable to prepare statement, %s; %w", p.insert, err)
	}
	defer stmt.Close()

	for _, value := range p.f() {
		if _, err = stmt.Exec(value...); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (p *PrintToDb) Close() {
	p.db.Close()
}

// NewPrintToSqlite3 opens a sqlite3 database and creates the report table.
func NewPrintToSqlite3(conn string, create string, insert string, f func() [][]any) (*PrintToDb, error) {
	db, err := sql.Open("sqlite3", conn)
	if err != nil {
		return nil, fmt.Errorf("unable to open connection to sqlite3 %s; %w", conn, err)
	}

	if _, err = db.Exec(create); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create table; %w", err)
	}

	db.Exec("PRAGMA synchronous = OFF")
	db.Exec("PRAGMA journal_mode = MEMORY")

	return &PrintToDb{db, insert, f}, nil
}

// AddPrintToSqlite3 records the report in a sqlite3 database if conn is set.
func (ps *Printers) AddPrintToSqlite3(conn string, create string, insert string, f func() [][]any) (*Printers, error) {
	if conn == "" {
		return ps, nil
	}
	p, err := NewPrintToSqlite3(conn, create, insert, f)
	if err != nil {
		return ps, err
	}
	return ps.AddPrinter(p), nil
}
