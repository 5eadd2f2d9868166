package sqlinline

// SchemaStatements create every table the service writes to. Each statement
// is idempotent.
var SchemaStatements = []string{
	`--sql 2d1ffa56-ef8c-4b77-be58-f3b67980f40a
create table if not exists production_batches (
  id uuid primary key,
  campaign_id text not null default '',
  strategy_segment_id text not null default '',
  concept_id text not null default '',
  batch_name text not null,
  created_at timestamptz not null default now()
);
`,
	`--sql b70e738d-d212-4f76-87a4-478a682dd918
create table if not exists production_assets (
  id uuid primary key,
  seq bigserial,
  batch_id uuid not null references production_batches(id) on delete cascade,
  asset_name text not null,
  platform text not null default '',
  placement text not null default '',
  spec_dimensions text not null default '',
  spec_details jsonb not null default '{}'::jsonb,
  status text not null,
  assignee text not null default '',
  asset_type text not null default 'static',
  visual_directive text not null default '',
  copy_headline text not null default '',
  source_asset_requirements text not null default '',
  adaptation_instruction text not null default '',
  file_url text not null default '',
  updated_at timestamptz not null default now()
);
`,
	`--sql 44167d26-ea72-4304-8855-9dcc3c935a80
create table if not exists job_plans (
  id uuid primary key,
  campaign_name text not null default '',
  creative_concept text not null,
  created_at timestamptz not null default now()
);
`,
	`--sql 08892c2b-5532-498c-bc72-078a4ccfafa5
create table if not exists production_jobs (
  plan_id uuid not null references job_plans(id) on delete cascade,
  job_id text not null,
  position int not null,
  status text not null,
  payload jsonb not null,
  updated_at timestamptz not null default now(),
  primary key (plan_id, job_id)
);
`,
	`--sql 19a89611-16b4-4ac1-a964-972353ae9dda
create table if not exists integration_tokens (
  id uuid primary key,
  provider text not null unique,
  token text not null,
  properties jsonb not null default '{}'::jsonb,
  created_at timestamptz not null default now(),
  updated_at timestamptz not null default now()
);
`,
}
