package db

const (
	versionQuery = `SELECT version();`
	pingQuery    = `SELECT 1;`

	insertUserQuery = `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id;`

	updateUserEmailQuery = `UPDATE users SET email = $1 WHERE id = $2;`

	deleteUserQuery = `DELETE FROM users WHERE id = $1;`

	findUserByIDQuery = `
		SELECT id, username, email, password_hash
		FROM users
		WHERE id = $1;`

	insertArticleQuery = `
		INSERT INTO articles (user_id, name, image_url, is_default, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;`

	deleteArticleQuery = `DELETE FROM articles WHERE id = $1;`

	findArticleByIDQuery = `
		SELECT id, user_id, name, image_url, is_default, category
		FROM articles
		WHERE id = $1;`
)
