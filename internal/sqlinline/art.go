package sqlinline

const QUpsertArt = `--sql 3c7a1e84-5f20-4b9d-8a36-1d9e6c2b4f70
insert into art_history (id, urls, prompt, description, timestamp, is_rejected, style_name)
values ($1, $2, $3, $4, $5, $6, $7)
on conflict (id) do update
set urls = excluded.urls,
    prompt = excluded.prompt,
    description = excluded.description,
    timestamp = excluded.timestamp,
    is_rejected = excluded.is_rejected,
    style_name = excluded.style_name;
`

const QTrimArtHistory = `--sql 6e2b9d47-0c81-4a5f-9e13-4b7d2f8c6a09
delete from art_history
where id not in (
  select id from art_history
  order by timestamp desc
  limit $1
);
`

const QSelectArtHistory = `--sql b8f4c260-7d19-4e3b-a5c7-0e9a3d1f5b86
select id, urls, prompt, description, timestamp, is_rejected, style_name
from art_history
order by timestamp desc;
`

const QDeleteArt = `--sql d1a6f935-4e08-4c72-b8d0-5f3c9e7a2b61
delete from art_history where id = $1;
`

const QClearArtHistory = `--sql 82c5e7b0-3d94-4f16-a2e8-9b0d4c6f1a73
delete from art_history;
`
