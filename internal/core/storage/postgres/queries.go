package postgres

// SQL for the dashboard read path.
//
// Every aggregate query shares filterClause, which takes the compiled
// predicate as bound arrays:
//
//	$1 included categories  (text[], lower-cased; empty = no restriction)
//	$2 excluded categories  (text[], lower-cased; empty = no restriction)
//	$3 genres               (text[], lower-cased; empty = no restriction)
//	$4 age range lower bounds, $5 upper bounds (int8[], parallel; empty = no restriction)
//
// Tags are matched exactly after splitting the comma-joined columns, so a
// category named "RPG" never matches "RPGLike" and user input never reaches
// the statement text.
const filterClause = `
		(cardinality($1::text[]) = 0 OR EXISTS (
			SELECT 1 FROM unnest(string_to_array(g.categories, ',')) AS c(tag)
			WHERE lower(btrim(c.tag)) = ANY($1::text[])
		))
		AND (cardinality($2::text[]) = 0 OR NOT EXISTS (
			SELECT 1 FROM unnest(string_to_array(g.categories, ',')) AS c(tag)
			WHERE lower(btrim(c.tag)) = ANY($2::text[])
		))
		AND (cardinality($3::text[]) = 0 OR EXISTS (
			SELECT 1 FROM unnest(string_to_array(g.genres, ',')) AS t(tag)
			WHERE lower(btrim(t.tag)) = ANY($3::text[])
		))
		AND (cardinality($4::int8[]) = 0 OR EXISTS (
			SELECT 1 FROM unnest($4::int8[], $5::int8[]) AS b(lo, hi)
			WHERE g.required_age BETWEEN b.lo AND b.hi
		))`

const (
	// queryHighestPeakCCU: MAX(peak_ccu) per game name.
	queryHighestPeakCCU = `
		SELECT
			g.name,
			MAX(f.peak_ccu)::numeric AS highest_peak_ccu
		FROM dim_game g
		JOIN fact_sales f ON g.app_id = f.app_id
		WHERE` + filterClause + `
		GROUP BY g.name
	`

	// queryAverageMedianPlaytime: mean of the stored average and median
	// playtimes per game name. Snapshots with either column NULL are skipped.
	queryAverageMedianPlaytime = `
		SELECT
			g.name,
			AVG(f.average_playtime_forever) AS average_playtime,
			AVG(f.median_playtime_forever) AS median_playtime
		FROM dim_game g
		JOIN fact_sales f ON g.app_id = f.app_id
		WHERE` + filterClause + `
		  AND f.average_playtime_forever IS NOT NULL
		  AND f.median_playtime_forever IS NOT NULL
		GROUP BY g.name
	`

	// queryRequiredAgeHistogram: number of games per required age.
	queryRequiredAgeHistogram = `
		SELECT
			g.required_age::text,
			COUNT(DISTINCT g.app_id) AS total_count
		FROM dim_game g
		WHERE` + filterClause + `
		GROUP BY g.required_age
	`

	// queryTotalGamesByPublisher: number of games per publisher.
	queryTotalGamesByPublisher = `
		SELECT
			btrim(g.publisher),
			COUNT(DISTINCT g.app_id) AS total_games
		FROM dim_game g
		WHERE` + filterClause + `
		  AND btrim(COALESCE(g.publisher, '')) <> ''
		GROUP BY btrim(g.publisher)
	`

	queryListCategories = `
		SELECT DISTINCT btrim(c.tag) AS category
		FROM dim_game g, unnest(string_to_array(g.categories, ',')) AS c(tag)
		WHERE btrim(c.tag) <> ''
		ORDER BY category
	`

	queryListGenres = `
		SELECT DISTINCT btrim(t.tag) AS genre
		FROM dim_game g, unnest(string_to_array(g.genres, ',')) AS t(tag)
		WHERE btrim(t.tag) <> ''
		ORDER BY genre
	`

	queryValidateSchema = `
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_name IN ('dim_game', 'fact_sales')
	`
)
