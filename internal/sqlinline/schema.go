package sqlinline

// Schema bootstrap statements, executed one by one at startup as a
// best-effort probe that the store is reachable and the tables exist.

const QEnsureBrandTable = `--sql 0a4e7d21-8c53-4b96-9f0e-6d2a1c8b3e57
create table if not exists brand_profiles (
  id                 uuid primary key,
  name               text not null default '',
  logo               text not null default '',
  summary            text not null default '',
  colors             text[] not null default '{}',
  typography         text not null default '',
  visual_style       text not null default '',
  expert_references  text[] not null default '{}',
  product_references text[] not null default '{}',
  "references"       text[] not null default '{}',
  gallery            text[] not null default '{}',
  saved_styles       jsonb not null default '[]',
  created_at         timestamptz not null default now(),
  updated_at         timestamptz not null default now()
);
`

const QEnsureArtTable = `--sql c9b2f680-1e47-4a35-8d0c-7f4e9a2d6b18
create table if not exists art_history (
  id          text primary key,
  urls        text[] not null default '{}',
  prompt      text not null default '',
  description text not null default '',
  timestamp   bigint not null,
  is_rejected boolean not null default false,
  style_name  text not null default ''
);
`

const QEnsureIntegrationTokensTable = `--sql 7d5c0a93-4f28-4e61-b9d7-1a8f3c6e0b42
create table if not exists integration_tokens (
  provider   text primary key,
  token      text not null,
  properties jsonb not null default '{}',
  updated_at timestamptz not null default now()
);
`
