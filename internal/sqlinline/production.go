package sqlinline

const QInsertProductionBatch = `--sql c489a119-c487-4477-a012-7ed1fc8a6ca9
insert into production_batches (id, campaign_id, strategy_segment_id, concept_id, batch_name, created_at)
values ($1::uuid, $2::text, $3::text, $4::text, $5::text, $6::timestamptz);
`

const QSelectProductionBatch = `--sql 36c4ab9c-8b07-4e4f-b2af-5511cba1b2ca
select id::text, campaign_id, strategy_segment_id, concept_id, batch_name, created_at
from production_batches
where id = $1::uuid
limit 1;
`

const QInsertProductionAsset = `--sql d63252ae-e852-4be6-8731-dfdf0d805155
insert into production_assets (
  id,
  batch_id,
  asset_name,
  platform,
  placement,
  spec_dimensions,
  spec_details,
  status,
  assignee,
  asset_type,
  visual_directive,
  copy_headline,
  source_asset_requirements,
  adaptation_instruction,
  file_url,
  updated_at
)
values (
  $1::uuid, $2::uuid, $3::text, $4::text, $5::text, $6::text, $7::jsonb, $8::text,
  $9::text, $10::text, $11::text, $12::text, $13::text, $14::text, $15::text, $16::timestamptz
);
`

const QSelectProductionAsset = `--sql af71c7c2-2f68-4364-982d-77d34ac40851
select
  id::text,
  batch_id::text,
  asset_name,
  platform,
  placement,
  spec_dimensions,
  spec_details,
  status,
  assignee,
  asset_type,
  visual_directive,
  copy_headline,
  source_asset_requirements,
  adaptation_instruction,
  file_url,
  updated_at
from production_assets
where id = $1::uuid
limit 1;
`

const QListProductionAssetsByBatch = `--sql fbb7340c-b9b4-480d-9436-521dd74bb217
select
  id::text,
  batch_id::text,
  asset_name,
  platform,
  placement,
  spec_dimensions,
  spec_details,
  status,
  assignee,
  asset_type,
  visual_directive,
  copy_headline,
  source_asset_requirements,
  adaptation_instruction,
  file_url,
  updated_at
from production_assets
where batch_id = $1::uuid
order by seq asc;
`

const QSwapProductionAssetStatus = `--sql f634d76f-232b-42d7-847a-5f73ceed9e79
update production_assets
set status = $3::text,
    updated_at = now()
where id = $1::uuid
  and status = $2::text;
`

const QInsertJobPlan = `--sql f4f58a13-4bc8-4748-8167-fdb54b6602a1
insert into job_plans (id, campaign_name, creative_concept, created_at)
values ($1::uuid, $2::text, $3::text, $4::timestamptz);
`

const QSelectJobPlan = `--sql 4c96e88b-0418-481b-948a-024e25059801
select id::text, campaign_name, creative_concept, created_at
from job_plans
where id = $1::uuid
limit 1;
`

const QInsertProductionJob = `--sql 628d7f43-e6eb-4cf5-919e-8a3eaf682df2
insert into production_jobs (plan_id, job_id, position, status, payload)
values ($1::uuid, $2::text, $3::int, $4::text, $5::jsonb);
`

const QListProductionJobsByPlan = `--sql 9d806dbf-486f-4333-81f6-17b1b90f1efe
select status, payload
from production_jobs
where plan_id = $1::uuid
order by position asc;
`

const QSwapProductionJobStatus = `--sql d95fc209-642f-45de-b6a2-c95dd7015588
update production_jobs
set status = $4::text,
    updated_at = now()
where plan_id = $1::uuid
  and job_id = $2::text
  and status = $3::text;
`
