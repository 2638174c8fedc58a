package sqlinline

const QSelectIntegrationToken = `--sql 5b0d8c36-9a71-4e24-b6f5-2c8e1d4a7f90
select token from integration_tokens where provider = $1;
`

const QUpsertIntegrationToken = `--sql f7e3a514-6b92-4d08-8c1a-3e5f0b9d2c67
insert into integration_tokens (provider, token, properties, updated_at)
values ($1, $2, $3, now())
on conflict (provider) do update
set token = excluded.token,
    properties = excluded.properties,
    updated_at = now();
`
