// Package sqlinline holds every SQL statement the service runs. Each const
// starts with a `--sql <uuid>` audit marker consumed by infra.SQLRunner for
// query-level logging and checked by tools/sqllint.
package sqlinline

const QSelectBrandID = `--sql 7f3d2a91-6c44-4e0b-9a12-5b8e0c1f6d27
select id from brand_profiles
order by created_at asc
limit 1;
`

const QInsertBrand = `--sql 1b9e4c72-8d15-4f3a-b6e0-2a7c5d9f8e41
insert into brand_profiles (
  id, name, logo, summary, colors, typography, visual_style,
  expert_references, product_references, "references", gallery, saved_styles
)
values (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
`

const QUpdateBrand = `--sql 9c1f7e53-2b86-4d09-8f4a-6e3b0d2c7a15
update brand_profiles
set name = $2,
    logo = $3,
    summary = $4,
    colors = $5,
    typography = $6,
    visual_style = $7,
    expert_references = $8,
    product_references = $9,
    "references" = $10,
    gallery = $11,
    saved_styles = $12,
    updated_at = now()
where id = $1;
`

const QSelectBrand = `--sql 4a8b3f16-9e27-4c50-a1d8-7f2e6b0c9d34
select name, logo, summary, colors, typography, visual_style,
       expert_references, product_references, "references", gallery, saved_styles
from brand_profiles
order by created_at asc
limit 1;
`

const QDeleteBrand = `--sql e5d09b28-1a73-4f6c-b2e9-8c4f7a1d0e52
delete from brand_profiles;
`
