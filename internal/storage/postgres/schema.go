package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Table definitions for the tracker. EnsureSchema runs once at startup and
// only creates what is missing; migrations beyond that are out of scope.
var schemaStatements = []string{
	`create table if not exists upcoming_projects (
		id bigserial primary key,
		code varchar(50) not null unique,
		name varchar(255) not null,
		client varchar(255) not null,
		description text not null,
		tech_stack jsonb not null default '[]',
		status varchar(50) not null default 'Upcoming',
		deadline varchar(100) not null,
		assigned_to jsonb not null default '[]',
		created_at timestamptz not null default now(),
		updated_at timestamptz not null default now()
	);`,

	`create table if not exists code_sequences (
		prefix varchar(10) primary key,
		value bigint not null default 0
	);`,

	`create table if not exists projects (
		id bigserial primary key,
		name varchar(255) not null unique,
		url text,
		type varchar(100),
		tech_stack jsonb not null default '[]',
		handled_by varchar(255),
		renewal_date varchar(100),
		status varchar(50) default 'Active',
		client varchar(255),
		description text,
		assigned_to jsonb not null default '[]',
		deadline varchar(100),
		created_at timestamptz not null default now(),
		updated_at timestamptz not null default now()
	);`,

	`create table if not exists clients (
		id varchar(50) primary key,
		name varchar(255) not null,
		industry varchar(100),
		contact_person varchar(255),
		email varchar(255),
		phone varchar(50),
		projects jsonb not null default '[]',
		total_value numeric(15,2) default 0,
		since date
	);`,

	`create table if not exists servers (
		id bigserial primary key,
		name varchar(255) not null,
		ip varchar(45),
		url text,
		nameservers jsonb not null default '[]',
		websites jsonb not null default '[]'
	);`,

	`create table if not exists domains (
		id bigserial primary key,
		name varchar(255) not null unique,
		renewal_date varchar(100),
		status varchar(50) default 'Active'
	);`,

	`create table if not exists team (
		id bigserial primary key,
		name varchar(255) not null,
		role varchar(255),
		email varchar(255),
		skills jsonb not null default '[]',
		avatar text
	);`,
}

// EnsureSchema creates any missing tracker tables.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
